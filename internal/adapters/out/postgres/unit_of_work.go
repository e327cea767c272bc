// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - One database transaction per command across all repositories
//   - Row locks on the shipment, stake account and balance rows a command touches
//   - Domain events of tracked aggregates written to the outbox inside the same transaction
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db, custodian)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	s, err := uow.ShipmentRepository().Get(ctx, sender, index)
//	if err != nil {
//	    return err
//	}
//	if err = s.Complete(caller, now); err != nil {
//	    return err
//	}
//	if err = uow.EscrowVault().Release(ctx, s.Sender(), s.Price()); err != nil {
//	    return err
//	}
//	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
//	    return err
//	}
//
//	uow.TrackAggregate(s)
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Balance rows are locked in address order to avoid deadlocks between transfers
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/ledgerrepo"
	"logistics/internal/adapters/out/postgres/outboxrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/stakerepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	custodian kernel.Address
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// custodian is the account that holds escrowed shipment payments.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, custodian)
func NewGormUnitOfWorkFactory(db *gorm.DB, custodian kernel.Address) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, custodian: custodian}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		custodian:         f.custodian,
		trackedAggregates: make([]kernel.AggregateRoot, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. On Commit the events recorded by every tracked
// aggregate are appended to the outbox before the transaction is committed, so
// a state change and its notifications are stored together or not at all.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	custodian         kernel.Address
	trackedAggregates []kernel.AggregateRoot
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit writes the outbox and finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
// Events are cleared from the tracked aggregates only after a successful commit.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	msgs := make([]ports.OutboxMessage, 0)
	for _, aggregate := range uow.trackedAggregates {
		for _, event := range aggregate.DomainEvents() {
			msg, err := ports.NewOutboxMessage(event)
			if err != nil {
				return err
			}
			msgs = append(msgs, msg)
		}
	}

	if err := outboxrepo.NewGormOutboxRepository(uow.tx).Append(ctx, msgs...); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, aggregate := range uow.trackedAggregates {
		aggregate.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// TrackAggregate registers an aggregate whose recorded events are written to the outbox on Commit.
func (uow *GormUnitOfWork) TrackAggregate(aggregate kernel.AggregateRoot) {
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

// ShipmentRepository provides access to shipment persistence within the unit of work.
// Repository operations execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn())
}

func (uow *GormUnitOfWork) StakeAccountRepository() ports.StakeAccountRepository {
	return stakerepo.NewGormAccountRepository(uow.conn())
}

// EscrowVault provides the native balances of the shipment ledger's custody account.
func (uow *GormUnitOfWork) EscrowVault() ports.EscrowVault {
	return ledgerrepo.NewGormEscrowVault(uow.conn(), uow.custodian)
}

func (uow *GormUnitOfWork) AssetLedger() ports.AssetLedger {
	return ledgerrepo.NewGormAssetLedger(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
