package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const maxItemNameLength = 256

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created through
	// NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrItemNameIsRequired is returned when a shipment has no item name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("itemName")
)

// Shipment is the aggregate root of the shipment ledger. It records who ships
// what to whom, the escrowed price, and where the shipment is in its lifecycle.
//
// Shipment follows these invariants:
//   - sender and receiver are valid, distinct addresses and never change
//   - descriptive attributes and price are fixed at creation
//   - price is non-zero
//   - status only moves Pending -> InTransit -> Delivered
//   - isPaid is true exactly when status is Delivered
type Shipment struct {
	kernel.EventRecorder

	sender   kernel.Address
	index    uint64
	receiver kernel.Address

	itemName string
	mode     Mode
	itemType ItemType
	distance uint64
	weight   uint64

	price  kernel.Amount
	status Status
	isPaid bool

	pickupTime   time.Time
	deliveryTime time.Time
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// Attributes groups the immutable descriptive fields of a shipment.
type Attributes struct {
	ItemName   string
	Mode       Mode
	ItemType   ItemType
	Distance   uint64
	Weight     uint64
	PickupTime time.Time
}

// NewShipment creates a Pending shipment at position index of the sender's sequence
// and records ShipmentCreated.
//
// Example:
//
//	s, err := shipment.NewShipment(sender, 0, receiver, shipment.Attributes{
//	    ItemName: "Steel beams", Mode: shipment.Land, ItemType: shipment.Iron,
//	    Distance: 120, Weight: 800,
//	}, price, clock.Now())
func NewShipment(
	sender kernel.Address,
	index uint64,
	receiver kernel.Address,
	attrs Attributes,
	price kernel.Amount,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		index:     index,
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setParties(sender, receiver),
		s.setAttributes(attrs),
		s.setPrice(price),
	); err != nil {
		return nil, err
	}

	s.Record(CreatedEvent{
		eventHeader: eventHeader{id: kernel.NewUUID(), at: createdAt},
		Sender:      sender.String(),
		Receiver:    receiver.String(),
		Index:       index,
		Price:       price.String(),
		Timestamp:   createdAt,
	})

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence without recording events.
// deliveryTime is ignored unless status is Delivered.
func RestoreShipment(
	sender kernel.Address,
	index uint64,
	receiver kernel.Address,
	attrs Attributes,
	price kernel.Amount,
	status Status,
	createdAt time.Time,
	deliveryTime time.Time,
) (*Shipment, error) {
	s := &Shipment{
		index:     index,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setParties(sender, receiver),
		s.setAttributes(attrs),
		s.setPrice(price),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	s.status = status
	if status == Delivered {
		s.isPaid = true
		s.deliveryTime = deliveryTime
	}

	return s, nil
}

// Validate ensures the Shipment was created through NewShipment or RestoreShipment.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// Key returns the "<sender>/<index>" identity of the shipment.
func (s *Shipment) Key() string {
	return Key(s.sender, s.index)
}

// Key formats the identity of the shipment at index in sender's sequence.
func Key(sender kernel.Address, index uint64) string {
	return fmt.Sprintf("%s/%d", sender, index)
}

func (s *Shipment) Sender() kernel.Address   { return s.sender }
func (s *Shipment) Index() uint64            { return s.index }
func (s *Shipment) Receiver() kernel.Address { return s.receiver }
func (s *Shipment) ItemName() string         { return s.itemName }
func (s *Shipment) Mode() Mode               { return s.mode }
func (s *Shipment) ItemType() ItemType       { return s.itemType }
func (s *Shipment) Distance() uint64         { return s.distance }
func (s *Shipment) Weight() uint64           { return s.weight }
func (s *Shipment) Price() kernel.Amount     { return s.price }
func (s *Shipment) Status() Status           { return s.status }
func (s *Shipment) IsPaid() bool             { return s.isPaid }
func (s *Shipment) PickupTime() time.Time    { return s.pickupTime }
func (s *Shipment) CreatedAt() time.Time     { return s.createdAt }

// DeliveryTime returns the completion time; zero until Delivered.
func (s *Shipment) DeliveryTime() time.Time { return s.deliveryTime }

// Attributes returns the descriptive fields.
func (s *Shipment) Attributes() Attributes {
	return Attributes{
		ItemName:   s.itemName,
		Mode:       s.mode,
		ItemType:   s.itemType,
		Distance:   s.distance,
		Weight:     s.weight,
		PickupTime: s.pickupTime,
	}
}

// Start moves the shipment to InTransit. Only the sender may do so.
func (s *Shipment) Start(caller kernel.Address, at time.Time) error {
	if !caller.IsEqual(s.sender) {
		return errs.NewUnauthorizedError("start shipment", caller.String(), s.sender.String())
	}

	newStatus, err := s.status.Start()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.Record(InTransitEvent{
		eventHeader: eventHeader{id: kernel.NewUUID(), at: at},
		Sender:      s.sender.String(),
		Receiver:    s.receiver.String(),
		Index:       s.index,
		Timestamp:   at,
	})
	return nil
}

// Complete moves the shipment to Delivered and marks the escrow as paid.
// Only the receiver may do so. The caller is responsible for releasing the
// escrowed price within the same transaction.
func (s *Shipment) Complete(caller kernel.Address, at time.Time) error {
	if !caller.IsEqual(s.receiver) {
		return errs.NewUnauthorizedError("complete shipment", caller.String(), s.receiver.String())
	}

	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.isPaid = true
	s.deliveryTime = at
	s.Record(DeliveredEvent{
		eventHeader: eventHeader{id: kernel.NewUUID(), at: at},
		Sender:      s.sender.String(),
		Receiver:    s.receiver.String(),
		Index:       s.index,
		Price:       s.price.String(),
		Timestamp:   at,
	})
	return nil
}

func (s *Shipment) setParties(sender, receiver kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	if err := receiver.Validate(); err != nil {
		return fmt.Errorf("receiver: %w", err)
	}
	if sender.IsEqual(receiver) {
		return errs.NewInvalidAddressError("receiver", "receiver must differ from sender")
	}
	s.sender = sender
	s.receiver = receiver
	return nil
}

func (s *Shipment) setAttributes(attrs Attributes) error {
	name := strings.TrimSpace(attrs.ItemName)
	var nameErr error
	switch {
	case name == "":
		nameErr = ErrItemNameIsRequired
	case len(name) > maxItemNameLength:
		nameErr = errs.NewValueIsOutOfRangeError("itemName length", len(name), 1, maxItemNameLength)
	}

	if err := errors.Join(nameErr, attrs.Mode.Validate(), attrs.ItemType.Validate()); err != nil {
		return err
	}

	s.itemName = name
	s.mode = attrs.Mode
	s.itemType = attrs.ItemType
	s.distance = attrs.Distance
	s.weight = attrs.Weight
	s.pickupTime = attrs.PickupTime
	return nil
}

func (s *Shipment) setPrice(price kernel.Amount) error {
	if price.IsZero() {
		return errs.NewInvalidAmountError("price")
	}
	s.price = price
	return nil
}
