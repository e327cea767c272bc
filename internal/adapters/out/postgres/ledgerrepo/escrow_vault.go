package ledgerrepo

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.EscrowVault = (*GormEscrowVault)(nil)

// GormEscrowVault holds escrowed native value under a custody account.
type GormEscrowVault struct {
	custodian kernel.Address
	balances  balances
}

func NewGormEscrowVault(db *gorm.DB, custodian kernel.Address) *GormEscrowVault {
	return &GormEscrowVault{
		custodian: custodian,
		balances:  balances{db: db, table: NativeBalancesTable},
	}
}

func (v *GormEscrowVault) Custodian() kernel.Address {
	return v.custodian
}

// Deposit credits custody with value attached to the current call.
func (v *GormEscrowVault) Deposit(ctx context.Context, amount kernel.Amount) error {
	return v.balances.credit(ctx, v.custodian, amount)
}

func (v *GormEscrowVault) Release(ctx context.Context, to kernel.Address, amount kernel.Amount) error {
	if err := v.balances.move(ctx, v.custodian, to, amount); err != nil {
		return errs.NewTransferFailedError(v.custodian.String(), to.String(), amount, err)
	}
	return nil
}

func (v *GormEscrowVault) BalanceOf(ctx context.Context, account kernel.Address) (kernel.Amount, error) {
	return v.balances.read(ctx, account)
}
