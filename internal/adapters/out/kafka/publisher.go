// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Header keys set on every published message.
const (
	HeaderEventName  = "event-name"
	HeaderOccurredAt = "occurred-at"
)

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ ports.EventPublisher = (*EventPublisher)(nil)

// EventPublisher writes each outbox message as one Kafka record keyed by the event id.
type EventPublisher struct {
	writer MessageWriter
	log    *slog.Logger
}

// NewWriter returns a synchronous writer that waits for all in-sync replicas.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}
}

func NewEventPublisher(writer MessageWriter, log *slog.Logger) *EventPublisher {
	return &EventPublisher{
		writer: writer,
		log:    log.With(slog.String("component", "kafka-publisher")),
	}
}

// Publish writes msgs in order. A failed batch is retried as a whole by the
// relay, so consumers must tolerate duplicates.
func (p *EventPublisher) Publish(ctx context.Context, msgs ...ports.OutboxMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	records := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		records = append(records, kafka.Message{
			Key:   []byte(m.ID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []kafka.Header{
				{Key: HeaderEventName, Value: []byte(m.Name)},
				{Key: HeaderOccurredAt, Value: []byte(m.OccurredAt.UTC().Format(time.RFC3339Nano))},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, records...); err != nil {
		p.log.Warn("publish failed", "count", len(records), "err", err)
		return err
	}
	p.log.Debug("published", "count", len(records))
	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
