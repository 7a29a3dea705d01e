package websocket

import (
	"BalaghAPI/internal/metrics"
	"BalaghAPI/internal/upload"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

type Hub struct {
	clients     map[*Client]bool
	userClients map[string]map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	done        chan struct{}

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		done:        make(chan struct{}),
		clients:     make(map[*Client]bool),
		userClients: make(map[string]map[*Client]bool),
	}
}

// Join hands client to the hub. It reports false once Run has returned.
func (h *Hub) Join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Leave removes client. After Run has returned it is a no-op.
func (h *Hub) Leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Done is closed when Run returns.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Run must be called once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				h.drop(client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			if client.UserID != "" {
				if _, ok := h.userClients[client.UserID]; !ok {
					h.userClients[client.UserID] = make(map[*Client]bool)
				}
				h.userClients[client.UserID][client] = true
			}
			h.mu.Unlock()
			metrics.WebsocketConnections.Inc()

		case client := <-h.unregister:
			h.mu.Lock()
			h.drop(client)
			h.mu.Unlock()
		}
	}
}

// drop must be called with h.mu held.
func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	client.dropped = true
	close(client.Send)
	metrics.WebsocketConnections.Dec()

	if userSet, ok := h.userClients[client.UserID]; ok {
		delete(userSet, client)
		if len(userSet) == 0 {
			delete(h.userClients, client.UserID)
		}
	}
}

func (h *Hub) ClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.userClients[userID])
}

func (h *Hub) BroadcastToUser(userID string, event Event) {
	data, err := encode(event)
	if err != nil {
		slog.Error("Failed to marshal event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.userClients[userID] {
		select {
		case client.Send <- data:
		default:
			h.drop(client)
		}
	}
}

// ForwardUploads pushes each upload status to the sockets of the file's owner
// until statuses is closed or ctx ends.
func (h *Hub) ForwardUploads(ctx context.Context, statuses <-chan upload.Status) {
	for {
		select {
		case <-ctx.Done():
			return
		case status, ok := <-statuses:
			if !ok {
				return
			}
			h.BroadcastToUser(status.OwnerID, Event{Type: EventUploadStatus, Payload: status})
		}
	}
}

func encode(event Event) ([]byte, error) {
	if event.Meta == nil {
		event.Meta = &EventMeta{Timestamp: time.Now().UnixMilli()}
	}
	return json.Marshal(event)
}
