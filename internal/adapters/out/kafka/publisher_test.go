package kafka_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	publisher "logistics/internal/adapters/out/kafka"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageWriter struct {
	mock.Mock
}

func (m *MockMessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockMessageWriter) Close() error {
	return m.Called().Error(0)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEventPublisher_Publish(t *testing.T) {
	at := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)
	msg := ports.OutboxMessage{
		ID:         kernel.NewUUID(),
		Name:       "ShipmentCreated",
		Payload:    []byte(`{"index":0}`),
		OccurredAt: at,
	}

	writer := new(MockMessageWriter)
	writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(records []kafka.Message) bool {
		if len(records) != 1 {
			return false
		}
		r := records[0]
		return string(r.Key) == msg.ID.String() &&
			string(r.Value) == `{"index":0}` &&
			r.Time.Equal(at) &&
			string(r.Headers[0].Value) == "ShipmentCreated"
	})).Return(nil).Once()

	err := publisher.NewEventPublisher(writer, discard()).Publish(t.Context(), msg)

	require.NoError(t, err)
	writer.AssertExpectations(t)
}

func TestEventPublisher_PublishEmptyBatch(t *testing.T) {
	writer := new(MockMessageWriter)

	err := publisher.NewEventPublisher(writer, discard()).Publish(t.Context())

	require.NoError(t, err)
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestEventPublisher_PublishError(t *testing.T) {
	writer := new(MockMessageWriter)
	boom := errors.New("broker unavailable")
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(boom).Once()

	err := publisher.NewEventPublisher(writer, discard()).Publish(t.Context(), ports.OutboxMessage{ID: kernel.NewUUID()})

	assert.ErrorIs(t, err, boom)
}

func TestEventPublisher_Close(t *testing.T) {
	writer := new(MockMessageWriter)
	writer.On("Close").Return(nil).Once()

	require.NoError(t, publisher.NewEventPublisher(writer, discard()).Close())
	writer.AssertExpectations(t)
}
