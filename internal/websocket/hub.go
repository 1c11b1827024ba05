package websocket

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrClientClosed is returned when attempting to send to a closed client
var ErrClientClosed = errors.New("client is closed")

// ClientInterface defines the interface that clients must implement
type ClientInterface interface {
	ID() string
	BoardID() string
	Send(data []byte) error
	Close() error
}

// Hub manages WebSocket connections organized by board.
// It is safe for concurrent use.
type Hub struct {
	// boards maps board ID to a map of client ID to client
	boards map[string]map[string]ClientInterface
	mu     sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		boards: make(map[string]map[string]ClientInterface),
	}
}

// Register adds a client to the hub under its board
func (h *Hub) Register(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	boardID := client.BoardID()
	clientID := client.ID()

	if h.boards[boardID] == nil {
		h.boards[boardID] = make(map[string]ClientInterface)
	}

	h.boards[boardID][clientID] = client

	log.Debug().
		Str("board_id", boardID).
		Str("client_id", clientID).
		Msg("WebSocket client registered")
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.remove(client.BoardID(), client.ID())
}

// remove deletes a client entry. Caller must hold h.mu.
func (h *Hub) remove(boardID, clientID string) {
	if clients, ok := h.boards[boardID]; ok {
		if _, exists := clients[clientID]; exists {
			delete(clients, clientID)

			// Clean up empty board maps
			if len(clients) == 0 {
				delete(h.boards, boardID)
			}

			log.Debug().
				Str("board_id", boardID).
				Str("client_id", clientID).
				Msg("WebSocket client unregistered")
		}
	}
}

// Broadcast sends an event to all clients subscribed to a board. Delivery
// is best-effort: clients whose send fails are pruned from the hub after
// the snapshot iteration completes, and failures never reach the caller.
func (h *Hub) Broadcast(boardID string, event Event) {
	data, err := event.ToJSON()
	if err != nil {
		log.Error().
			Err(err).
			Str("board_id", boardID).
			Str("event_type", event.Type).
			Msg("Failed to serialize event")
		return
	}

	h.mu.RLock()
	clients, ok := h.boards[boardID]
	if !ok || len(clients) == 0 {
		h.mu.RUnlock()
		return
	}

	// Snapshot clients to avoid holding the lock during sends
	snapshot := make([]ClientInterface, 0, len(clients))
	for _, client := range clients {
		snapshot = append(snapshot, client)
	}
	h.mu.RUnlock()

	var failed []ClientInterface
	for _, client := range snapshot {
		if err := client.Send(data); err != nil {
			log.Warn().
				Err(err).
				Str("board_id", boardID).
				Str("client_id", client.ID()).
				Msg("Failed to send to client")
			failed = append(failed, client)
		}
	}

	if len(failed) > 0 {
		h.mu.Lock()
		for _, client := range failed {
			h.remove(boardID, client.ID())
		}
		h.mu.Unlock()

		for _, client := range failed {
			client.Close()
		}
	}

	log.Debug().
		Str("board_id", boardID).
		Str("event_type", event.Type).
		Int("client_count", len(snapshot)).
		Msg("Broadcast event")
}

// ClientCount returns the number of clients connected to a board
func (h *Hub) ClientCount(boardID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.boards[boardID]; ok {
		return len(clients)
	}
	return 0
}

// TotalClientCount returns the total number of connected clients across all boards
func (h *Hub) TotalClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, clients := range h.boards {
		total += len(clients)
	}
	return total
}
