package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// EscrowVault is the native value-transfer path of the shipment ledger. It keeps
// native balances per address, one of which is the ledger's custody account.
type EscrowVault interface {
	// Custodian returns the address holding escrowed value.
	Custodian() kernel.Address

	// Deposit credits value attached to a call to the custody account.
	Deposit(ctx context.Context, amount kernel.Amount) error

	// Release moves amount from custody to the given address. It fails with
	// errs.ErrTransferFailed when custody cannot cover the amount.
	Release(ctx context.Context, to kernel.Address, amount kernel.Amount) error

	// BalanceOf returns the native balance of account.
	BalanceOf(ctx context.Context, account kernel.Address) (kernel.Amount, error)
}
