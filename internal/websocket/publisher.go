package websocket

import (
	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
)

// EventPublisher defines the interface for publishing events to WebSocket clients
type EventPublisher interface {
	Publish(event Event)
}

// Ensure Hub implements EventPublisher
var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting the event to all clients
func (h *Hub) Publish(event Event) {
	h.Broadcast(event)
}

// NoOpPublisher is a publisher that does nothing (for testing or when WebSocket is disabled)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(event Event) {}

// Publisher forwards ledger commits to the hub so every connected client
// sees the new snapshot as soon as it is durable.
type Publisher struct {
	hub   EventPublisher
	store *ledger.Store
}

// NewPublisher creates a new Publisher
func NewPublisher(hub EventPublisher, store *ledger.Store) *Publisher {
	return &Publisher{hub: hub, store: store}
}

// Start subscribes to the ledger store. It returns an unsubscribe
// function.
func (p *Publisher) Start() func() {
	return p.store.Subscribe(func(data *domain.AppData) {
		p.hub.Publish(SnapshotUpdated(data))
	})
}
