package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

type GetNativeBalanceQueryHandler struct {
	reader ports.BalanceReader
}

func NewGetNativeBalanceQueryHandler(reader ports.BalanceReader) GetNativeBalanceQueryHandler {
	return GetNativeBalanceQueryHandler{reader: reader}
}

func (h GetNativeBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetNativeBalanceQuery,
) (GetNativeBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNativeBalanceQueryResponse{}, err
	}

	balance, err := h.reader.NativeBalanceOf(ctx, query.account)
	if err != nil {
		return GetNativeBalanceQueryResponse{}, err
	}
	return GetNativeBalanceQueryResponse{Account: query.account.String(), Balance: balance.String()}, nil
}

type GetTokenBalanceQueryHandler struct {
	reader        ports.BalanceReader
	stakingEngine kernel.Address
}

func NewGetTokenBalanceQueryHandler(reader ports.BalanceReader, stakingEngine kernel.Address) GetTokenBalanceQueryHandler {
	return GetTokenBalanceQueryHandler{reader: reader, stakingEngine: stakingEngine}
}

func (h GetTokenBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetTokenBalanceQuery,
) (GetTokenBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTokenBalanceQueryResponse{}, err
	}

	balance, err := h.reader.TokenBalanceOf(ctx, query.owner)
	if err != nil {
		return GetTokenBalanceQueryResponse{}, err
	}
	allowance, err := h.reader.TokenAllowance(ctx, query.owner, h.stakingEngine)
	if err != nil {
		return GetTokenBalanceQueryResponse{}, err
	}

	return GetTokenBalanceQueryResponse{
		Owner:            query.owner.String(),
		Balance:          balance.String(),
		StakingAllowance: allowance.String(),
	}, nil
}
