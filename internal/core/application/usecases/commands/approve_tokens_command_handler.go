package commands

import "context"

// ApproveTokensCommandHandler records an allowance on the asset ledger.
type ApproveTokensCommandHandler struct {
	uowFactory TokenUoWFactory
}

func NewApproveTokensCommandHandler(uowFactory TokenUoWFactory) ApproveTokensCommandHandler {
	return ApproveTokensCommandHandler{uowFactory: uowFactory}
}

func (h ApproveTokensCommandHandler) Handle(ctx context.Context, cmd ApproveTokensCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AssetLedger().Approve(ctx, cmd.Owner(), cmd.Spender(), cmd.Amount()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
