// Package shipment provides the Shipment aggregate of the escrow-based shipment ledger.
//
// The package includes:
//   - Shipment: the aggregate root holding immutable descriptive attributes, the
//     escrowed price and the delivery lifecycle
//   - Status: the Pending -> InTransit -> Delivered state machine
//   - Mode and ItemType: the descriptive enums that drive pricing
//   - ShipmentCreated / ShipmentInTransit / ShipmentDelivered notifications
//
// Key business rules:
//   - A shipment is identified by (sender, index); indices are assigned per sender
//     in creation order and never reused
//   - Only the sender may start a shipment, only the receiver may complete it
//   - Status never regresses and never skips a state; Delivered is terminal
//   - Completing a shipment marks the escrow as paid out to the sender
package shipment
