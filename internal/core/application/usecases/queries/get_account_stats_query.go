package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetAccountStatsQueryIsNotConstructed = errors.New(
	"GetAccountStatsQuery must be created via NewGetAccountStatsQuery constructor",
)

// GetAccountStatsQuery summarizes an account's shipments as sender for dashboards.
type GetAccountStatsQuery struct {
	account kernel.Address

	guard guard.ConstructorGuard
}

func NewGetAccountStatsQuery(account kernel.Address) (GetAccountStatsQuery, error) {
	if err := account.Validate(); err != nil {
		return GetAccountStatsQuery{}, err
	}
	return GetAccountStatsQuery{account: account, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAccountStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountStatsQueryIsNotConstructed)
}

type GetAccountStatsQueryResponse struct {
	Account   string
	Total     uint64
	Pending   uint64
	InTransit uint64
	Delivered uint64
}
