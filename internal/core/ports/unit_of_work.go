package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit writes the domain events of every tracked aggregate to the outbox
	// and commits the transaction.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Handlers defer it unconditionally and
	// ignore the error it returns once Commit has closed the transaction.
	Rollback(ctx context.Context) error

	// TrackAggregate registers an aggregate whose events must be stored on Commit.
	TrackAggregate(aggregate kernel.AggregateRoot)

	ShipmentRepository() ShipmentRepository
	StakeAccountRepository() StakeAccountRepository
	EscrowVault() EscrowVault
	AssetLedger() AssetLedger
	OutboxRepository() OutboxRepository
}
