package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetNativeBalanceQueryIsNotConstructed = errors.New(
		"GetNativeBalanceQuery must be created via NewGetNativeBalanceQuery constructor",
	)
	ErrGetTokenBalanceQueryIsNotConstructed = errors.New(
		"GetTokenBalanceQuery must be created via NewGetTokenBalanceQuery constructor",
	)
)

// GetNativeBalanceQuery reads the native balance the escrow vault keeps for an account.
type GetNativeBalanceQuery struct {
	account kernel.Address

	guard guard.ConstructorGuard
}

func NewGetNativeBalanceQuery(account kernel.Address) (GetNativeBalanceQuery, error) {
	if err := account.Validate(); err != nil {
		return GetNativeBalanceQuery{}, err
	}
	return GetNativeBalanceQuery{account: account, guard: guard.NewConstructorGuard()}, nil
}

func (q GetNativeBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetNativeBalanceQueryIsNotConstructed)
}

type GetNativeBalanceQueryResponse struct {
	Account string
	Balance string
}

// GetTokenBalanceQuery reads an owner's token balance and the allowance the
// owner has granted to the staking engine.
type GetTokenBalanceQuery struct {
	owner kernel.Address

	guard guard.ConstructorGuard
}

func NewGetTokenBalanceQuery(owner kernel.Address) (GetTokenBalanceQuery, error) {
	if err := owner.Validate(); err != nil {
		return GetTokenBalanceQuery{}, err
	}
	return GetTokenBalanceQuery{owner: owner, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTokenBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetTokenBalanceQueryIsNotConstructed)
}

type GetTokenBalanceQueryResponse struct {
	Owner            string
	Balance          string
	StakingAllowance string
}
