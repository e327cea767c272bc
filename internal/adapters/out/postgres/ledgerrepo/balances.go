package ledgerrepo

import (
	"context"
	"errors"
	"slices"

	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// balances reads and writes one balance table.
type balances struct {
	db    *gorm.DB
	table string
}

func (b balances) read(ctx context.Context, account kernel.Address) (kernel.Amount, error) {
	var dto BalanceDTO
	err := b.db.WithContext(ctx).Table(b.table).Where("account = ?", account.String()).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.ZeroAmount(), nil
	}
	if err != nil {
		return kernel.Amount{}, err
	}
	return kernel.AmountFromDecimal(dto.Amount)
}

// lock materializes and locks the rows of accounts in address order, so two
// transfers between the same pair never wait on each other in opposite order.
func (b balances) lock(ctx context.Context, accounts ...kernel.Address) (map[kernel.Address]kernel.Amount, error) {
	keys := make([]string, 0, len(accounts))
	byKey := make(map[string]kernel.Address, len(accounts))
	for _, a := range accounts {
		k := a.String()
		if _, seen := byKey[k]; !seen {
			keys = append(keys, k)
			byKey[k] = a
		}
	}
	slices.Sort(keys)

	db := b.db.WithContext(ctx)
	out := make(map[kernel.Address]kernel.Amount, len(keys))
	for _, k := range keys {
		if err := db.Table(b.table).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&BalanceDTO{Account: k, Amount: "0"}).Error; err != nil {
			return nil, err
		}

		var dto BalanceDTO
		if err := db.Table(b.table).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account = ?", k).
			Take(&dto).Error; err != nil {
			return nil, err
		}

		amount, err := kernel.AmountFromDecimal(dto.Amount)
		if err != nil {
			return nil, err
		}
		out[byKey[k]] = amount
	}
	return out, nil
}

func (b balances) write(ctx context.Context, account kernel.Address, amount kernel.Amount) error {
	return b.db.WithContext(ctx).Table(b.table).
		Where("account = ?", account.String()).
		Update("amount", amount.String()).Error
}

// credit adds amount to account.
func (b balances) credit(ctx context.Context, account kernel.Address, amount kernel.Amount) error {
	locked, err := b.lock(ctx, account)
	if err != nil {
		return err
	}
	next, err := locked[account].Add(amount)
	if err != nil {
		return err
	}
	return b.write(ctx, account, next)
}

// move debits from and credits to. It returns the InsufficientFundsError from
// Amount.Sub when from cannot cover amount.
func (b balances) move(ctx context.Context, from, to kernel.Address, amount kernel.Amount) error {
	locked, err := b.lock(ctx, from, to)
	if err != nil {
		return err
	}

	debited, err := locked[from].Sub(amount)
	if err != nil {
		return err
	}
	if from.IsEqual(to) {
		return nil
	}
	credited, err := locked[to].Add(amount)
	if err != nil {
		return err
	}

	if err = b.write(ctx, from, debited); err != nil {
		return err
	}
	return b.write(ctx, to, credited)
}
