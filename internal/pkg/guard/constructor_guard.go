// Package guard provides ConstructorGuard, which lets value objects, commands
// and aggregates detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is invalid.
// Only NewConstructorGuard produces a guard that validates.
//
// Example usage:
//
//	var ErrVatRateNotConstructed = errors.New("VatRate must be created via NewVatRate")
//
//	type VatRate struct {
//	    value decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func (r VatRate) Validate() error {
//	    return r.guard.Validate(ErrVatRateNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed guards and validationError otherwise.
// A nil validationError is replaced with ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
