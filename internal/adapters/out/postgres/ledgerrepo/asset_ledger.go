package ledgerrepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.AssetLedger = (*GormAssetLedger)(nil)

// GormAssetLedger is the fungible asset ledger backed by token_balances and token_allowances.
type GormAssetLedger struct {
	db       *gorm.DB
	balances balances
}

func NewGormAssetLedger(db *gorm.DB) *GormAssetLedger {
	return &GormAssetLedger{
		db:       db,
		balances: balances{db: db, table: TokenBalancesTable},
	}
}

func (l *GormAssetLedger) BalanceOf(ctx context.Context, owner kernel.Address) (kernel.Amount, error) {
	return l.balances.read(ctx, owner)
}

// LockBalances locks the balance rows of accounts until the transaction ends.
func (l *GormAssetLedger) LockBalances(ctx context.Context, accounts ...kernel.Address) (map[kernel.Address]kernel.Amount, error) {
	return l.balances.lock(ctx, accounts...)
}

func (l *GormAssetLedger) Transfer(ctx context.Context, from, to kernel.Address, amount kernel.Amount) error {
	if err := l.balances.move(ctx, from, to, amount); err != nil {
		return errs.NewTransferFailedError(from.String(), to.String(), amount, err)
	}
	return nil
}

// TransferFrom moves amount from owner to to on behalf of spender and reduces the allowance.
func (l *GormAssetLedger) TransferFrom(ctx context.Context, spender, owner, to kernel.Address, amount kernel.Amount) error {
	allowance, err := l.lockAllowance(ctx, owner, spender)
	if err != nil {
		return err
	}

	left, err := allowance.Sub(amount)
	if err != nil {
		return errs.NewTransferFailedError(owner.String(), to.String(), amount,
			fmt.Errorf("allowance of %s is %s", spender, allowance))
	}

	if err = l.Transfer(ctx, owner, to, amount); err != nil {
		return err
	}
	return l.Approve(ctx, owner, spender, left)
}

// Approve sets the allowance, replacing any previous value.
func (l *GormAssetLedger) Approve(ctx context.Context, owner, spender kernel.Address, amount kernel.Amount) error {
	dto := AllowanceDTO{Owner: owner.String(), Spender: spender.String(), Amount: amount.String()}
	return l.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}, {Name: "spender"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount"}),
		}).
		Create(&dto).Error
}

func (l *GormAssetLedger) Allowance(ctx context.Context, owner, spender kernel.Address) (kernel.Amount, error) {
	return readAllowance(l.db.WithContext(ctx), owner, spender)
}

func (l *GormAssetLedger) lockAllowance(ctx context.Context, owner, spender kernel.Address) (kernel.Amount, error) {
	return readAllowance(l.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), owner, spender)
}

func readAllowance(db *gorm.DB, owner, spender kernel.Address) (kernel.Amount, error) {
	var dto AllowanceDTO
	err := db.Where("owner = ? AND spender = ?", owner.String(), spender.String()).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.ZeroAmount(), nil
	}
	if err != nil {
		return kernel.Amount{}, err
	}
	return kernel.AmountFromDecimal(dto.Amount)
}
