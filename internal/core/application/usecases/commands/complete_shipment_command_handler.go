package commands

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CompleteShipmentCommandHandler moves an InTransit shipment to Delivered on behalf
// of its receiver and pays the escrowed price to the sender.
//
// The status change and the release share one transaction: if custody cannot pay,
// the call fails with errs.ErrTransferFailed and the shipment stays InTransit.
type CompleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	locker     KeyLocker
	clock      ports.Clock
}

func NewCompleteShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	locker KeyLocker,
	clock ports.Clock,
) CompleteShipmentCommandHandler {
	return CompleteShipmentCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		clock:      clock,
	}
}

func (h CompleteShipmentCommandHandler) Handle(ctx context.Context, cmd CompleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locker.Lock(shipmentKey(cmd.Sender(), cmd.Index()))
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	s, err := repo.Get(ctx, cmd.Sender(), cmd.Index())
	if err != nil {
		return err
	}

	if err = s.Complete(cmd.Caller(), h.clock.Now()); err != nil {
		return err
	}

	vault := uow.EscrowVault()
	if err = vault.Release(ctx, s.Sender(), s.Price()); err != nil {
		if !errors.Is(err, errs.ErrTransferFailed) {
			err = errs.NewTransferFailedError(vault.Custodian().String(), s.Sender().String(), s.Price(), err)
		}
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	uow.TrackAggregate(s)
	return uow.Commit(ctx)
}
