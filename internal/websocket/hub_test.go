package websocket

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	messages [][]byte
	mu       sync.Mutex
	closed   bool
}

func newMockClient(id string) *mockClient {
	return &mockClient{
		id:       id,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
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

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")

	hub.Register(client1)
	hub.Register(client2)

	assert.Equal(t, 2, hub.ClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount())

	// Unregistering twice is a no-op
	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(client2)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")
	hub.Register(client1)
	hub.Register(client2)

	hub.Broadcast(SnapshotUpdated(map[string]string{"user": "test"}))

	// Sends are asynchronous
	require.Eventually(t, func() bool {
		return len(client1.GetMessages()) == 1 && len(client2.GetMessages()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastSkipsUnregisteredClient(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")
	hub.Register(client1)
	hub.Register(client2)
	hub.Unregister(client2)

	hub.Broadcast(SnapshotUpdated(nil))

	require.Eventually(t, func() bool {
		return len(client1.GetMessages()) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Empty(t, client2.GetMessages())
}

func TestHub_BroadcastWithNoClients(t *testing.T) {
	hub := NewHub()

	// Must not panic
	hub.Broadcast(SnapshotUpdated(nil))

	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_ConcurrentRegisterBroadcast(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			hub.Register(newMockClient(string(rune('a' + n))))
		}(i)
		go func() {
			defer wg.Done()
			hub.Broadcast(SnapshotUpdated(nil))
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, hub.ClientCount())
}
