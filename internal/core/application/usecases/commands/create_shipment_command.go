package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a sender's request to open a shipment and
// escrow its price. AttachedValue is the value sent along with the request; it
// must equal the quote for the shipment attributes.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(sender, receiver, shipment.Attributes{
//	    ItemName: "Pallet of coal", Mode: shipment.Water, ItemType: shipment.Coal,
//	    Distance: 400, Weight: 900,
//	}, attached)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment: %w", err)
//	}
//	index, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	sender        kernel.Address
	receiver      kernel.Address
	attributes    shipment.Attributes
	attachedValue kernel.Amount

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates the parties. Attribute and price rules are
// enforced by the aggregate.
func NewCreateShipmentCommand(
	sender kernel.Address,
	receiver kernel.Address,
	attributes shipment.Attributes,
	attachedValue kernel.Amount,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		attributes:    attributes,
		attachedValue: attachedValue,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setReceiver(receiver),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Sender() kernel.Address          { return c.sender }
func (c CreateShipmentCommand) Receiver() kernel.Address        { return c.receiver }
func (c CreateShipmentCommand) Attributes() shipment.Attributes { return c.attributes }
func (c CreateShipmentCommand) AttachedValue() kernel.Amount    { return c.attachedValue }

func (c *CreateShipmentCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	c.sender = sender
	return nil
}

func (c *CreateShipmentCommand) setReceiver(receiver kernel.Address) error {
	if err := receiver.Validate(); err != nil {
		return fmt.Errorf("receiver: %w", err)
	}
	c.receiver = receiver
	return nil
}
