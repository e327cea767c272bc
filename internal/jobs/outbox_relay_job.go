package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxRelaySchedule runs the relay every five seconds.
const DefaultOutboxRelaySchedule = "*/5 * * * * *"

// OutboxRelayer publishes one batch of pending notifications.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob drains the notification outbox on a schedule. A tick keeps
// relaying full batches until the outbox is empty, and a tick that is still
// running when the next one fires causes that one to be skipped.
type OutboxRelayJob struct {
	relayer   OutboxRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewOutboxRelayJob creates a job relaying up to batchSize messages per round.
func NewOutboxRelayJob(relayer OutboxRelayer, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &OutboxRelayJob{
		relayer:   relayer,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "outbox_relay_job"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start schedules the job.
func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() {
		j.drain(j.ctx, cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Outbox relay job started", "schedule", j.schedule, "batch", j.batchSize)
	return nil
}

// RunOnce drains the outbox immediately and returns how many messages were published.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		return 0, err
	}
	return j.drain(ctx, cmd), nil
}

func (j *OutboxRelayJob) drain(ctx context.Context, cmd commands.RelayOutboxCommand) int {
	total := 0
	for ctx.Err() == nil {
		n, err := j.relayer.Handle(ctx, cmd)
		total += n
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err, "published", total)
			return total
		}
		if n < cmd.BatchSize() {
			break
		}
	}
	if total > 0 {
		j.logger.DebugContext(ctx, "Outbox relayed", "published", total)
	}
	return total
}

// Stop cancels a running relay round and waits for it to return.
func (j *OutboxRelayJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
