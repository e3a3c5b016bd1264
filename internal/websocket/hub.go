// Package websocket carries the demo link channel: whenever the credential
// store issues a verification or reset link, the demo mailer broadcasts it
// here so a demo UI can render the "email" without a real inbox.
package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Message is one demo email event pushed to connected clients.
type Message struct {
	Type    string `json:"type"` // always "demo_link"
	Purpose string `json:"purpose"`
	Email   string `json:"email"`
	Link    string `json:"link"`
	Text    string `json:"text"`
}

// NewLinkMessage builds a demo_link message.
func NewLinkMessage(purpose, email, link, text string) Message {
	return Message{
		Type:    "demo_link",
		Purpose: purpose,
		Email:   email,
		Link:    link,
		Text:    text,
	}
}

// Hub maintains the set of active WebSocket clients and broadcasts messages.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	logger  *slog.Logger
}

// NewHub creates a new Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a client from the hub and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Broadcast sends a message to all connected clients.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal broadcast", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Client buffer full — drop message to avoid blocking
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
