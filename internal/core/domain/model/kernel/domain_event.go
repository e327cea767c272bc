package kernel

import "time"

// DomainEvent is a notification recorded by an aggregate during a state change.
// Events are persisted with the change and published after commit.
type DomainEvent interface {
	// EventID uniquely identifies this occurrence.
	EventID() UUID
	// EventName is the stable notification name, e.g. "ShipmentCreated".
	EventName() string
	// OccurredAt is the ledger time of the change.
	OccurredAt() time.Time
}

// AggregateRoot is implemented by aggregates that record domain events.
type AggregateRoot interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// EventRecorder is embedded by aggregates to collect their events.
type EventRecorder struct {
	events []DomainEvent
}

// Record appends e to the pending events.
func (r *EventRecorder) Record(e DomainEvent) {
	r.events = append(r.events, e)
}

// DomainEvents returns the events recorded since the last clear.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

// ClearDomainEvents drops all recorded events.
func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
