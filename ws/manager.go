package ws

import (
	"sync"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
)

// event is the wire envelope. Type lets clients multiplex future
// payload kinds over the same socket.
type event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub tracks connected clients by user and fans notifications out to
// every open connection of the recipient. A user may hold several
// connections (multiple tabs or devices).
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run owns the client registry. Start it once, as a goroutine, before
// accepting connections.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			conns := h.clients[client.userID]
			if conns == nil {
				conns = make(map[*Client]bool)
				h.clients[client.userID] = conns
			}
			conns[client] = true
			total := len(conns)
			h.mu.Unlock()
			logger.Debug("websocket client connected", "user_id", client.userID, "connections", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[client.userID]; ok {
				if conns[client] {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.clients, client.userID)
					}
				}
			}
			h.mu.Unlock()
			logger.Debug("websocket client disconnected", "user_id", client.userID)
		}
	}
}

// Push delivers a notification to every live connection of the user.
// It never blocks: a connection whose send buffer is full is dropped,
// the client will reconnect and resync over HTTP.
func (h *Hub) Push(userID string, notification dto.NotificationResponse) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[userID] {
		select {
		case client.send <- event{Type: "notification", Data: notification}:
		default:
			logger.Warn("websocket send buffer full, dropping connection", "user_id", userID)
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// ConnectionCount returns the number of open sockets across all users.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, conns := range h.clients {
		total += len(conns)
	}
	return total
}
