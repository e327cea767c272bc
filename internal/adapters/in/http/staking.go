package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Stake handles POST /api/v1/staking/stake. The caller must have approved the
// staking engine for at least the amount.
func (s *Server) Stake(ctx echo.Context, params servers.StakeParams) error {
	owner, amount, err := bindOwnerAmount(ctx, params.XCallerAddress)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStakeCommand(owner, amount)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.Stake.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// WithdrawStake handles POST /api/v1/staking/withdraw.
func (s *Server) WithdrawStake(ctx echo.Context, params servers.WithdrawStakeParams) error {
	owner, amount, err := bindOwnerAmount(ctx, params.XCallerAddress)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewWithdrawStakeCommand(owner, amount)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.WithdrawStake.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ClaimReward handles POST /api/v1/staking/claim and reports the amount paid.
func (s *Server) ClaimReward(ctx echo.Context, params servers.ClaimRewardParams) error {
	owner, err := kernel.ParseAddress(params.XCallerAddress)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewClaimRewardCommand(owner)
	if err != nil {
		return writeError(ctx, err)
	}

	paid, err := s.commands.ClaimReward.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.RewardClaimed{Owner: owner.String(), Amount: paid.String()})
}

// GetStakeAccount handles GET /api/v1/staking/{owner}.
func (s *Server) GetStakeAccount(ctx echo.Context, owner servers.Owner) error {
	addr, err := kernel.ParseAddress(owner)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetStakeAccountQuery(addr)
	if err != nil {
		return writeError(ctx, err)
	}

	account, err := s.queries.GetStakeAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.StakeAccount{
		Owner:           account.Owner,
		Principal:       account.Principal,
		AccruedRewards:  account.AccruedRewards,
		PendingReward:   account.PendingReward,
		LastAccrualTime: optionalTime(account.LastAccrualTime),
		RewardModel:     account.RewardModel,
	})
}

func bindOwnerAmount(ctx echo.Context, caller string) (kernel.Address, kernel.Amount, error) {
	var body servers.AmountRequest
	if err := ctx.Bind(&body); err != nil {
		return kernel.Address{}, kernel.Amount{}, errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	owner, err := kernel.ParseAddress(caller)
	if err != nil {
		return kernel.Address{}, kernel.Amount{}, err
	}

	amount, err := kernel.AmountFromDecimal(body.Amount)
	if err != nil {
		return kernel.Address{}, kernel.Amount{}, err
	}
	return owner, amount, nil
}
