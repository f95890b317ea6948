package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"storefront-api/internal/events"

	"github.com/gofiber/contrib/websocket"
)

// Hub keeps the connected admin consoles and broadcasts storefront events
// to them. It satisfies events.Publisher.
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	quit       chan struct{}
	closeOnce  sync.Once
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, 64),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			slog.Info("ws client connected", "clients", h.ClientCount())

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()

		case <-h.quit:
			h.mutex.Lock()
			for conn := range h.Clients {
				conn.Close()
				delete(h.Clients, conn)
			}
			h.mutex.Unlock()
			return
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

// ErrHubFull is returned when the broadcast queue is saturated; the event is
// dropped.
var ErrHubFull = errors.New("ws: broadcast queue full")

// Publish queues the event for broadcast in call order without blocking the
// caller.
func (h *Hub) Publish(_ context.Context, event events.Event) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}
	select {
	case <-h.quit:
		return nil
	default:
	}
	select {
	case h.Broadcast <- msg:
		return nil
	default:
		return ErrHubFull
	}
}

// Close stops Run and disconnects every client.
func (h *Hub) Close() error {
	h.closeOnce.Do(func() { close(h.quit) })
	return nil
}

// Serve is the per-connection loop for the websocket route.
func (h *Hub) Serve(c *websocket.Conn) {
	select {
	case h.Register <- c:
	case <-h.quit:
		return
	}
	defer func() {
		select {
		case h.Unregister <- c:
		case <-h.quit:
		}
	}()

	for {
		// Keep alive loop; clients never send anything meaningful.
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
