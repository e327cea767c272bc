package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/stake"
)

// Page bounds a list read. A zero Limit means no limit.
type Page struct {
	Offset int
	Limit  int
}

// ShipmentStats aggregates an account's shipments as sender.
type ShipmentStats struct {
	Total     uint64
	Pending   uint64
	InTransit uint64
	Delivered uint64
}

// ShipmentReader serves committed shipment state to queries. Reads take no locks.
type ShipmentReader interface {
	GetShipment(ctx context.Context, sender kernel.Address, index uint64) (*shipment.Shipment, error)
	ListBySender(ctx context.Context, sender kernel.Address, page Page) ([]*shipment.Shipment, error)
	CountBySender(ctx context.Context, sender kernel.Address) (uint64, error)
	// ListByReceiver resolves the receiver index in the order references were appended.
	ListByReceiver(ctx context.Context, receiver kernel.Address, page Page) ([]*shipment.Shipment, error)
	CountByReceiver(ctx context.Context, receiver kernel.Address) (uint64, error)
	StatsBySender(ctx context.Context, sender kernel.Address) (ShipmentStats, error)
}

// StakeAccountReader serves committed staking state to queries.
type StakeAccountReader interface {
	// GetAccount returns errs.ErrObjectNotFound when the owner never staked.
	GetAccount(ctx context.Context, owner kernel.Address) (*stake.Account, error)
}

// BalanceReader serves committed native and token balances.
type BalanceReader interface {
	NativeBalanceOf(ctx context.Context, account kernel.Address) (kernel.Amount, error)
	TokenBalanceOf(ctx context.Context, owner kernel.Address) (kernel.Amount, error)
	TokenAllowance(ctx context.Context, owner, spender kernel.Address) (kernel.Amount, error)
}
