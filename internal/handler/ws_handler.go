package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/onegt/chrms-backend/internal/middleware"
	"github.com/onegt/chrms-backend/internal/service"
	ws "github.com/onegt/chrms-backend/internal/websocket"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allow-list permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams notifications to connected clients.
type WSHandler struct {
	notificationService *service.NotificationService
	log                 zerolog.Logger
	upgrader            websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(notificationService *service.NotificationService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		notificationService: notificationService,
		log:                 log.With().Str("component", "ws_handler").Logger(),
		upgrader:            buildUpgrader(allowedOrigins),
	}
}

// NotificationStream godoc
// WS /ws/v1/notifications?token=...
// Upgrades to WebSocket and forwards the identity's notification channel.
// The subscription follows the authenticated email, so one associate can
// listen from several tabs or devices at once.
func (h *WSHandler) NotificationStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	sub := h.notificationService.Subscribe(ctx, claims.Email)
	defer sub.Close()

	// Reader goroutine: only pings come from the client. A read error means
	// the peer went away, which also tears down the forwarding loop.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var envelope ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &envelope); err != nil {
				return
			}
			if envelope.Action == ws.ActionPing {
				if err := ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong}); err != nil {
					return
				}
			}
		}
	}()

	ch := sub.Channel()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var n service.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				h.log.Warn().Err(err).Msg("malformed notification payload")
				continue
			}
			if err := ws.WriteTyped(conn, ws.NotificationEvent{Event: ws.EventNotification, Data: n}); err != nil {
				return
			}
		}
	}
}
