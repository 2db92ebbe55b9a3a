package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegt/chrms-backend/internal/capability"
	"github.com/onegt/chrms-backend/internal/middleware"
	"github.com/onegt/chrms-backend/internal/response"
)

// CapabilityHandler exposes the capability catalog and per-capability menus.
type CapabilityHandler struct{}

// NewCapabilityHandler creates a new CapabilityHandler.
func NewCapabilityHandler() *CapabilityHandler {
	return &CapabilityHandler{}
}

// ListCapabilities godoc
// GET /api/v1/capabilities
// Returns the capabilities the current identity may switch to.
func (h *CapabilityHandler) ListCapabilities(c *gin.Context) {
	ev := middleware.GetEvaluator(c)
	if ev == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"capabilities": capability.Available(ev),
	})
}

// GetMenu godoc
// GET /api/v1/capabilities/:id/menu
// Returns the navigation menu for one capability, narrowed to the current
// identity's role and designation.
func (h *CapabilityHandler) GetMenu(c *gin.Context) {
	ev := middleware.GetEvaluator(c)
	if ev == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id := capability.ID(c.Param("id"))
	if _, ok := capability.Registry[id]; !ok {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"sections": capability.MenuFor(id, ev),
	})
}
