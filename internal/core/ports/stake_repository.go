package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stake"
)

// StakeAccountRepository defines the persistence contract for staking accounts.
type StakeAccountRepository interface {
	// Get loads the owner's account for update. Returns errs.ErrObjectNotFound
	// when the owner never staked.
	Get(ctx context.Context, owner kernel.Address) (*stake.Account, error)

	// Save inserts or replaces the account.
	Save(ctx context.Context, aggregate *stake.Account) error
}
