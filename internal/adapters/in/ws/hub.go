// Package ws pushes delivery status changes to connected back-office clients
// over websockets.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/mapsensemedia/betterrental/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Hub fans delivery events out to every connected client. It implements the
// delivery event publisher port; publishing never blocks the caller — slow
// clients are dropped.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[*websocket.Conn]chan []byte),
	}
}

// Serve upgrades the request and streams events until the client disconnects.
func (h *Hub) Serve(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	send := make(chan []byte, 16)
	h.register(conn, send)
	defer h.unregister(conn)

	go h.writeLoop(conn, send)

	// The read loop only watches for the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// PublishStatusChanged broadcasts the event to every connected client.
func (h *Hub) PublishStatusChanged(event ports.DeliveryEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("marshal delivery event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, send := range h.clients {
		select {
		case send <- payload:
		default:
			// Client is not keeping up; close it rather than block dispatch.
			h.dropLocked(conn)
		}
	}
}

func (h *Hub) register(conn *websocket.Conn, send chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = send
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(conn)
}

func (h *Hub) dropLocked(conn *websocket.Conn) {
	if send, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(send)
		_ = conn.Close()
	}
}

func (h *Hub) writeLoop(conn *websocket.Conn, send chan []byte) {
	for payload := range send {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.unregister(conn)
			return
		}
	}
}
