package websocket

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	boardID  string
	messages [][]byte
	mu       sync.Mutex
	closed   bool
	failSend bool
}

func newMockClient(id, boardID string) *mockClient {
	return &mockClient{
		id:       id,
		boardID:  boardID,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) BoardID() string {
	return m.boardID
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.failSend {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1", "board-a")
	client2 := newMockClient("client-2", "board-a")
	client3 := newMockClient("client-3", "board-b")

	hub.Register(client1)
	hub.Register(client2)
	hub.Register(client3)

	assert.Equal(t, 2, hub.ClientCount("board-a"))
	assert.Equal(t, 1, hub.ClientCount("board-b"))
	assert.Equal(t, 3, hub.TotalClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount("board-a"))

	hub.Unregister(client2)
	assert.Equal(t, 0, hub.ClientCount("board-a"))
	assert.Equal(t, 1, hub.TotalClientCount())
}

func TestHub_Broadcast_OnlyToSubscribedBoard(t *testing.T) {
	hub := NewHub()

	subscriber := newMockClient("client-1", "board-a")
	bystander := newMockClient("client-2", "board-b")
	hub.Register(subscriber)
	hub.Register(bystander)

	hub.Broadcast("board-a", NewActivityEvent(map[string]string{"id": "act-1"}))

	require.Len(t, subscriber.GetMessages(), 1)
	assert.Empty(t, bystander.GetMessages())

	var envelope struct {
		Type     string            `json:"type"`
		Activity map[string]string `json:"activity"`
	}
	require.NoError(t, json.Unmarshal(subscriber.GetMessages()[0], &envelope))
	assert.Equal(t, "activity", envelope.Type)
	assert.Equal(t, "act-1", envelope.Activity["id"])
}

func TestHub_Broadcast_NoSubscribers(t *testing.T) {
	hub := NewHub()

	// Must not panic or error with zero subscribers
	hub.Broadcast("board-a", NewActivityEvent(nil))
}

func TestHub_Broadcast_PrunesFailedClients(t *testing.T) {
	hub := NewHub()

	healthy := newMockClient("client-1", "board-a")
	broken := newMockClient("client-2", "board-a")
	broken.failSend = true

	hub.Register(healthy)
	hub.Register(broken)

	hub.Broadcast("board-a", NewActivityEvent(map[string]string{"id": "act-1"}))

	// Failed client is removed and closed; healthy client still receives
	assert.Equal(t, 1, hub.ClientCount("board-a"))
	assert.True(t, broken.IsClosed())
	assert.Len(t, healthy.GetMessages(), 1)

	// Next broadcast only reaches the healthy client
	hub.Broadcast("board-a", NewActivityEvent(map[string]string{"id": "act-2"}))
	assert.Len(t, healthy.GetMessages(), 2)
	assert.Empty(t, broken.GetMessages())
}

func TestHub_ConcurrentBroadcastAndChurn(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			client := newMockClient(string(rune('a'+n)), "board-a")
			hub.Register(client)
			hub.Broadcast("board-a", NewActivityEvent(map[string]int{"n": n}))
			hub.Unregister(client)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, hub.TotalClientCount())
}
