// Package guard detects zero-value structs that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and aggregates that may only be
// obtained through their New*/Restore* functions. The zero value is "not constructed".
//
// Example:
//
//	type StakeCommand struct {
//	    owner  kernel.Address
//	    amount kernel.Amount
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c StakeCommand) Validate() error {
//	    return c.guard.Validate(ErrStakeCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
