// Package eventlog publishes outbox messages to the structured log. It is the
// notification sink when no broker is configured.
package eventlog

import (
	"context"
	"log/slog"

	"logistics/internal/core/ports"
)

var _ ports.EventPublisher = (*Publisher)(nil)

type Publisher struct {
	log *slog.Logger
}

func NewPublisher(log *slog.Logger) *Publisher {
	return &Publisher{log: log.With(slog.String("component", "eventlog"))}
}

func (p *Publisher) Publish(ctx context.Context, msgs ...ports.OutboxMessage) error {
	for _, m := range msgs {
		p.log.InfoContext(ctx, "notification",
			slog.String("event", m.Name),
			slog.String("id", m.ID.String()),
			slog.Time("occurred_at", m.OccurredAt),
			slog.String("payload", string(m.Payload)),
		)
	}
	return nil
}
