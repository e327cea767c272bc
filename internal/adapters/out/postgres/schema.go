package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/ledgerrepo"
	"logistics/internal/adapters/out/postgres/outboxrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/stakerepo"
	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// Tables lists every table the adapter owns, in truncation-safe order.
var Tables = []string{
	"shipments",
	"shipment_receiver_refs",
	"stake_accounts",
	ledgerrepo.NativeBalancesTable,
	ledgerrepo.TokenBalancesTable,
	"token_allowances",
	"outbox_messages",
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ReceiverRefDTO{},
		&stakerepo.AccountDTO{},
		&ledgerrepo.AllowanceDTO{},
		&outboxrepo.MessageDTO{},
	); err != nil {
		return err
	}
	for _, table := range []string{ledgerrepo.NativeBalancesTable, ledgerrepo.TokenBalancesTable} {
		if err := db.Table(table).AutoMigrate(&ledgerrepo.BalanceDTO{}); err != nil {
			return err
		}
	}
	return nil
}

// MintGenesis credits the initial token supply to treasury on an empty ledger.
func MintGenesis(ctx context.Context, db *gorm.DB, treasury kernel.Address, supply kernel.Amount) (bool, error) {
	return ledgerrepo.MintGenesis(ctx, db, treasury, supply)
}
