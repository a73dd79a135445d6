// Package guard detects commands, queries and value objects that were
// created as zero values instead of through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in a struct and set only by its constructor.
// The zero value fails validation.
//
//	type AcceptDeliveryCommand struct {
//	    partnerID  kernel.UUID
//	    deliveryID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c AcceptDeliveryCommand) Validate() error {
//	    return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
