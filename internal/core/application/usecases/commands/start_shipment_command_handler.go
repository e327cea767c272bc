package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// StartShipmentCommandHandler moves a Pending shipment to InTransit on behalf of its sender.
type StartShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	locker     KeyLocker
	clock      ports.Clock
}

func NewStartShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	locker KeyLocker,
	clock ports.Clock,
) StartShipmentCommandHandler {
	return StartShipmentCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		clock:      clock,
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown index, errs.ErrUnauthorized
// when the caller is not the sender and errs.ErrInvalidState when the shipment is
// not Pending. On failure nothing is persisted.
func (h StartShipmentCommandHandler) Handle(ctx context.Context, cmd StartShipmentCommand) error {
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

	if err = s.Start(cmd.Caller(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	uow.TrackAggregate(s)
	return uow.Commit(ctx)
}
