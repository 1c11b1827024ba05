package websocket

// EventPublisher defines the interface for publishing events to WebSocket clients
type EventPublisher interface {
	// Publish sends an event to all clients subscribed to the specified board
	Publish(boardID string, event Event)
}

// Ensure Hub implements EventPublisher
var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting the event to the board
func (h *Hub) Publish(boardID string, event Event) {
	h.Broadcast(boardID, event)
}

// NoOpPublisher is a publisher that does nothing (for testing)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(boardID string, event Event) {}
