// Package commands contains business operations that modify ledger state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, per-key locking,
// transaction management, value transfer and persistence.
package commands

import (
	"context"
	"strconv"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure that an aggregate change, the value it moves and the
// notifications it emits are committed or discarded together.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AggregateTracker registers aggregates whose events are written to the outbox on Commit.
	AggregateTracker interface {
		TrackAggregate(aggregate kernel.AggregateRoot)
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// StakeRepoFactory provides access to the staking account repository within a transaction.
	StakeRepoFactory interface {
		StakeAccountRepository() ports.StakeAccountRepository
	}

	// EscrowVaultFactory provides access to native balances within a transaction.
	EscrowVaultFactory interface {
		EscrowVault() ports.EscrowVault
	}

	// AssetLedgerFactory provides access to the fungible asset ledger within a transaction.
	AssetLedgerFactory interface {
		AssetLedger() ports.AssetLedger
	}

	// OutboxRepoFactory provides access to the notification outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// ShipmentUoW manages transactions for shipment ledger operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.ShipmentRepository()
	//   vault := uow.EscrowVault()
	//   // ... mutate, move value, uow.TrackAggregate(s)
	//
	//   err = uow.Commit(ctx)
	ShipmentUoW interface {
		TxManager
		AggregateTracker
		ShipmentRepoFactory
		EscrowVaultFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// StakeUoW manages transactions for staking engine operations.
	StakeUoW interface {
		TxManager
		AggregateTracker
		StakeRepoFactory
		AssetLedgerFactory
	}

	// StakeUoWFactory creates new staking unit of work instances.
	StakeUoWFactory interface {
		Create() StakeUoW
	}

	// TokenUoW manages transactions that only touch the asset ledger.
	TokenUoW interface {
		TxManager
		AssetLedgerFactory
	}

	// TokenUoWFactory creates new token unit of work instances.
	TokenUoWFactory interface {
		Create() TokenUoW
	}

	// OutboxUoW manages transactions of the notification relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)

// KeyLocker serializes operations per account key within the process.
type KeyLocker interface {
	Lock(keys ...string) (unlock func())
}

func shipmentSequenceKey(sender kernel.Address) string {
	return "shipment:" + sender.String()
}

func shipmentKey(sender kernel.Address, index uint64) string {
	return "shipment:" + sender.String() + ":" + strconv.FormatUint(index, 10)
}

func stakeKey(owner kernel.Address) string {
	return "stake:" + owner.String()
}
