package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// AssetLedger is the fungible token ledger the staking engine deposits into,
// withdraws from and pays rewards from. Allowances follow the usual
// approve / transferFrom semantics: TransferFrom consumes allowance granted by
// the owner to the spender.
//
// Transfer and TransferFrom fail with errs.ErrTransferFailed. The cause is
// kept in errs.TransferFailedError; an overdraft carries an
// errs.InsufficientFundsError there. A unit of work that overdraws a balance
// concurrently spent by another one fails the same way, at the latest on
// commit.
type AssetLedger interface {
	BalanceOf(ctx context.Context, owner kernel.Address) (kernel.Amount, error)
	// LockBalances reads the balances of accounts and keeps other units of
	// work from spending them until this one ends. Accounts are locked in a
	// fixed order, so callers may pass them in any order.
	LockBalances(ctx context.Context, accounts ...kernel.Address) (map[kernel.Address]kernel.Amount, error)
	Transfer(ctx context.Context, from, to kernel.Address, amount kernel.Amount) error
	TransferFrom(ctx context.Context, spender, owner, to kernel.Address, amount kernel.Amount) error
	Approve(ctx context.Context, owner, spender kernel.Address, amount kernel.Amount) error
	Allowance(ctx context.Context, owner, spender kernel.Address) (kernel.Amount, error)
}
