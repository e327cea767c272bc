package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Pending ──(sender)──> InTransit ──(receiver)──> Delivered
//
// No transition is reversible and none may be applied twice.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status; the price is held in escrow.
	Pending

	// InTransit indicates the sender has handed the shipment over.
	InTransit

	// Delivered indicates the receiver confirmed delivery and the escrow was released.
	// This is a final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

// ParseStatus returns the Status named s.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of Pending, InTransit or Delivered.
func (s Status) Validate() error {
	if s < Pending || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Start transitions Pending to InTransit.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("start shipment", s.String())
	}
	return InTransit, nil
}

// Deliver transitions InTransit to Delivered.
//
// Invalid transitions:
//   - Pending -> Delivered (must be started first)
//   - Delivered -> Delivered (already delivered)
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewInvalidStateError("complete shipment", s.String())
	}
	return Delivered, nil
}
