package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key holding the request id.
const ContextKeyRequestID = "request_id"

// RequestIDMiddleware assigns a request id to every request. An incoming
// X-Request-ID header is honored so upstream proxies can correlate logs;
// otherwise a fresh UUID is generated. The id is echoed on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
