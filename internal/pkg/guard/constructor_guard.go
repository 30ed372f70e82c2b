// Package guard detects values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects that are
// only meaningful when built by their constructor. The zero value reports
// "not constructed".
//
// Example:
//
//	var ErrSelectDateCommandIsNotConstructed = errors.New("SelectDateCommand must be created via NewSelectDateCommand")
//
//	type SelectDateCommand struct {
//	    date  kernel.Date
//	    guard guard.ConstructorGuard
//	}
//
//	func (c SelectDateCommand) Validate() error {
//	    return c.guard.Validate(ErrSelectDateCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
