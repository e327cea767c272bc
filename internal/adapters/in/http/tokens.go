package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ApproveTokens handles POST /api/v1/tokens/approve - sets the allowance the
// caller grants to a spender. Stakers approve the staking engine here.
func (s *Server) ApproveTokens(ctx echo.Context, params servers.ApproveTokensParams) error {
	var body servers.Approval
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parties, err := parseAddresses(params.XCallerAddress, body.Spender)
	amount, amountErr := kernel.AmountFromDecimal(body.Amount)
	if err = errors.Join(err, amountErr); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApproveTokensCommand(parties[0], parties[1], amount)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.ApproveTokens.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// TransferTokens handles POST /api/v1/tokens/transfer. Transfers to the staking
// engine fund its reward pool.
func (s *Server) TransferTokens(ctx echo.Context, params servers.TransferTokensParams) error {
	var body servers.TokenTransfer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parties, err := parseAddresses(params.XCallerAddress, body.To)
	amount, amountErr := kernel.AmountFromDecimal(body.Amount)
	if err = errors.Join(err, amountErr); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransferTokensCommand(parties[0], parties[1], amount)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.TransferTokens.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetTokenBalance handles GET /api/v1/tokens/{owner}/balance.
func (s *Server) GetTokenBalance(ctx echo.Context, owner servers.Owner) error {
	addr, err := kernel.ParseAddress(owner)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTokenBalanceQuery(addr)
	if err != nil {
		return writeError(ctx, err)
	}

	balance, err := s.queries.GetTokenBalance.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.TokenBalance{
		Owner:            balance.Owner,
		Balance:          balance.Balance,
		StakingAllowance: balance.StakingAllowance,
	})
}
