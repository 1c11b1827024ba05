package websocket

import "encoding/json"

// Event is the envelope delivered to live board subscribers.
// Format: {"type": "activity", "activity": {...}}
type Event struct {
	Type     string `json:"type"`
	Activity any    `json:"activity"`
}

// NewActivityEvent wraps a logged activity entry for broadcast
func NewActivityEvent(activity any) Event {
	return Event{
		Type:     "activity",
		Activity: activity,
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
