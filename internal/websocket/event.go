package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event
type EventType string

const (
	EventTypeUpdated EventType = "updated"
	EventTypeReset   EventType = "reset"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeSnapshot EntityType = "snapshot"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "snapshot.updated"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "snapshot"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// SnapshotUpdated creates a snapshot.updated event carrying the full
// ledger aggregate
func SnapshotUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeSnapshot, payload)
}

// SnapshotReset creates a snapshot.reset event
func SnapshotReset(payload interface{}) Event {
	return NewEvent(EventTypeReset, EntityTypeSnapshot, payload)
}
