package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"toolshub/internal/api/ws"
	"toolshub/internal/config"
)

type WebSocketHandler struct {
	upgrader websocket.Upgrader
	hub      *ws.Hub
}

func NewWebSocketHandler(cfg *config.Config) *WebSocketHandler {
	return &WebSocketHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the API itself is CORS-open; the event feed follows suit
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		hub: ws.GetHub(),
	}
}

// HandleConnection upgrades the request and parks the client on the hub until
// it hangs up. The feed is write-only; inbound frames are discarded.
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	id := h.hub.Register(conn)
	defer h.hub.Unregister(id)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}
