package errs

import (
	"errors"
	"fmt"
)

// Ledger failure kinds. None of them is retried by the core.
var (
	ErrInvalidPayment         = errors.New("invalid payment")
	ErrInvalidAddress         = errors.New("invalid address")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidState           = errors.New("invalid state")
	ErrNotFound               = ErrObjectNotFound
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrInsufficientRewardPool = errors.New("insufficient reward pool")
	ErrTransferFailed         = errors.New("transfer failed")
	ErrArithmeticOverflow     = errors.New("arithmetic overflow")

	// ErrConcurrentUpdate reports a write that lost a race with another writer.
	// Unlike the kinds above it may succeed when the caller retries.
	ErrConcurrentUpdate = errors.New("concurrent update")
)

// NewInvalidPaymentError reports a mismatch between the attached value and the quote.
func NewInvalidPaymentError(attached, quoted fmt.Stringer) error {
	return fmt.Errorf("%w: attached %s, quoted %s", ErrInvalidPayment, attached, quoted)
}

// NewInvalidAddressError reports a malformed or disallowed identity.
func NewInvalidAddressError(paramName string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidAddress, paramName, stripNewlines(reason))
}

// NewInvalidAmountError reports a non-positive amount where a positive one is required.
func NewInvalidAmountError(paramName string) error {
	return fmt.Errorf("%w: %s must be greater than 0", ErrInvalidAmount, paramName)
}

// NewArithmeticOverflowError reports an operation whose result does not fit an amount.
func NewArithmeticOverflowError(operation string) error {
	return fmt.Errorf("%w: %s", ErrArithmeticOverflow, operation)
}

// NewInsufficientRewardPoolError reports a payout larger than the engine holds.
func NewInsufficientRewardPoolError(payout, held fmt.Stringer) error {
	return fmt.Errorf("%w: payout %s, held %s", ErrInsufficientRewardPool, payout, held)
}

// UnauthorizedError is returned when the caller is not the identity an operation requires.
type UnauthorizedError struct {
	Action   string
	Caller   string
	Expected string
}

func NewUnauthorizedError(action, caller, expected string) *UnauthorizedError {
	return &UnauthorizedError{
		Action:   action,
		Caller:   caller,
		Expected: expected,
	}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s may not %s, only %s may", ErrUnauthorized, e.Caller, e.Action, e.Expected)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidStateError is returned when a transition is requested from the wrong state.
type InvalidStateError struct {
	Action  string
	Current string
}

func NewInvalidStateError(action, current string) *InvalidStateError {
	return &InvalidStateError{
		Action:  action,
		Current: current,
	}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s from %s", ErrInvalidState, e.Action, e.Current)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InsufficientFundsError is returned when a debit exceeds the available balance.
type InsufficientFundsError struct {
	Requested string
	Available string
}

func NewInsufficientFundsError(requested, available fmt.Stringer) *InsufficientFundsError {
	return &InsufficientFundsError{
		Requested: requested.String(),
		Available: available.String(),
	}
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: requested %s, available %s", ErrInsufficientFunds, e.Requested, e.Available)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// TransferFailedError wraps a failure of the value-transfer path.
type TransferFailedError struct {
	From   string
	To     string
	Amount string
	Cause  error
}

func NewTransferFailedError(from, to string, amount fmt.Stringer, cause error) *TransferFailedError {
	return &TransferFailedError{
		From:   from,
		To:     to,
		Amount: amount.String(),
		Cause:  cause,
	}
}

func (e *TransferFailedError) Error() string {
	msg := fmt.Sprintf("%s: %s from %s to %s", ErrTransferFailed, e.Amount, e.From, e.To)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *TransferFailedError) Unwrap() error {
	return ErrTransferFailed
}
