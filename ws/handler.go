package ws

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The bearer token authenticates the socket; browser origin is not
	// part of the trust model.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Handler upgrades authenticated requests to websocket connections on
// the hub.
type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// ConnectionCount exposes the hub's open socket count for health
// reporting.
func (h *Handler) ConnectionCount() int {
	return h.hub.ConnectionCount()
}

// ServeWS runs behind AuthMiddleware; the user identity comes from the
// gin context.
func (h *Handler) ServeWS(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		logger.CtxWithError(c.Request.Context(), "websocket upgrade failed", err)
		return
	}

	client := &Client{
		hub:    h.hub,
		userID: userID,
		conn:   conn,
		send:   make(chan event, 256),
	}
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
