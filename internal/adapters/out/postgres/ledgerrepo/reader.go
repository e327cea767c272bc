package ledgerrepo

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.BalanceReader = (*Reader)(nil)

// Reader serves committed balances and allowances.
type Reader struct {
	db     *gorm.DB
	native balances
	tokens balances
}

func NewReader(db *gorm.DB) *Reader {
	return &Reader{
		db:     db,
		native: balances{db: db, table: NativeBalancesTable},
		tokens: balances{db: db, table: TokenBalancesTable},
	}
}

func (r *Reader) NativeBalanceOf(ctx context.Context, account kernel.Address) (kernel.Amount, error) {
	return r.native.read(ctx, account)
}

func (r *Reader) TokenBalanceOf(ctx context.Context, owner kernel.Address) (kernel.Amount, error) {
	return r.tokens.read(ctx, owner)
}

func (r *Reader) TokenAllowance(ctx context.Context, owner, spender kernel.Address) (kernel.Amount, error) {
	return readAllowance(r.db.WithContext(ctx), owner, spender)
}

// MintGenesis credits supply to treasury when no token balance exists yet and
// reports whether it did. The table is locked so two starting nodes cannot both mint.
func MintGenesis(ctx context.Context, db *gorm.DB, treasury kernel.Address, supply kernel.Amount) (bool, error) {
	if err := treasury.Validate(); err != nil {
		return false, err
	}
	if supply.IsZero() {
		return false, nil
	}

	minted := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("LOCK TABLE " + TokenBalancesTable + " IN EXCLUSIVE MODE").Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Table(TokenBalancesTable).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		minted = true
		return tx.Table(TokenBalancesTable).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&BalanceDTO{Account: treasury.String(), Amount: supply.String()}).Error
	})
	return minted, err
}
