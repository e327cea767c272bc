package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateShipmentCommandHandler opens a shipment and escrows its price.
//
// The attached value is checked against the quote before anything is locked.
// Under the sender's sequence lock the handler assigns the next index, appends
// the shipment (and its receiver index entry) and credits custody with the
// attached value, all in one transaction.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	locker     KeyLocker
	clock      ports.Clock
	pricing    services.PricingEngine
}

func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	locker KeyLocker,
	clock ports.Clock,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		clock:      clock,
		pricing:    services.NewPricingEngine(),
	}
}

// Handle returns the index assigned to the new shipment within the sender's sequence.
//
// Errors:
//   - errs.ErrInvalidPayment when the attached value differs from the quote
//   - errs.ErrInvalidAmount when the quote is zero (no distance and no weight)
//   - errs.ErrInvalidAddress when the receiver equals the sender
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	attrs := cmd.Attributes()
	quote, err := h.pricing.Quote(attrs.Distance, attrs.Weight, attrs.Mode, attrs.ItemType)
	if err != nil {
		return 0, err
	}
	if !cmd.AttachedValue().IsEqual(quote) {
		return 0, errs.NewInvalidPaymentError(cmd.AttachedValue(), quote)
	}
	if quote.IsZero() {
		return 0, errs.NewInvalidAmountError("price")
	}

	unlock := h.locker.Lock(shipmentSequenceKey(cmd.Sender()))
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	index, err := repo.NextIndex(ctx, cmd.Sender())
	if err != nil {
		return 0, err
	}

	s, err := shipment.NewShipment(cmd.Sender(), index, cmd.Receiver(), attrs, quote, h.clock.Now())
	if err != nil {
		return 0, err
	}

	if err = repo.Add(ctx, s); err != nil {
		return 0, err
	}

	if err = uow.EscrowVault().Deposit(ctx, s.Price()); err != nil {
		return 0, err
	}

	uow.TrackAggregate(s)
	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return index, nil
}
