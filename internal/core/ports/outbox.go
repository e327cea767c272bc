package ports

import (
	"context"
	"encoding/json"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event awaiting publication.
type OutboxMessage struct {
	ID         kernel.UUID
	Name       string
	Payload    []byte
	OccurredAt time.Time
}

// NewOutboxMessage serializes event as JSON.
func NewOutboxMessage(event kernel.DomainEvent) (OutboxMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxMessage{}, err
	}
	return OutboxMessage{
		ID:         event.EventID(),
		Name:       event.EventName(),
		Payload:    payload,
		OccurredAt: event.OccurredAt(),
	}, nil
}

// OutboxRepository stores messages written in the same transaction as the state
// change that produced them.
type OutboxRepository interface {
	Append(ctx context.Context, msgs ...OutboxMessage) error

	// FetchUnpublished returns up to limit unpublished messages in the order
	// they were appended.
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, msgs ...OutboxMessage) error
}
