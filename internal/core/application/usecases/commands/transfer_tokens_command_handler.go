package commands

import "context"

// TransferTokensCommandHandler moves tokens on the asset ledger. Insufficient
// balance surfaces as errs.ErrTransferFailed.
type TransferTokensCommandHandler struct {
	uowFactory TokenUoWFactory
}

func NewTransferTokensCommandHandler(uowFactory TokenUoWFactory) TransferTokensCommandHandler {
	return TransferTokensCommandHandler{uowFactory: uowFactory}
}

func (h TransferTokensCommandHandler) Handle(ctx context.Context, cmd TransferTokensCommand) error {
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

	if err := uow.AssetLedger().Transfer(ctx, cmd.From(), cmd.To(), cmd.Amount()); err != nil {
		return asTransferFailed(err, cmd.From(), cmd.To(), cmd.Amount())
	}

	return uow.Commit(ctx)
}
