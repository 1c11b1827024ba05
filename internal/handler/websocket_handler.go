package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	ws "github.com/mlovre/kanbo/kanbo-backend/internal/websocket"
)

// WebSocketHandler handles WebSocket upgrade requests
type WebSocketHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler. Connections are
// accepted from the given origins; an empty slice allows any origin.
func NewWebSocketHandler(hub *ws.Hub, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowedOrigins) == 0 {
					return true
				}
				origin := r.Header.Get("Origin")
				for _, allowed := range allowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
		},
	}
}

// Subscribe handles GET /api/ws/:boardId. The subscription is not
// authenticated; subscribers receive activity events for the board and
// inbound messages are discarded.
func (h *WebSocketHandler) Subscribe(c echo.Context) error {
	boardID := c.Param("boardId")
	if boardID == "" {
		return NewValidationError(c, "Board id is required", nil)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Warn().Err(err).Str("board_id", boardID).Msg("WebSocket upgrade failed")
		return nil
	}

	client := ws.NewClient(conn, boardID, h.hub)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	return nil
}
