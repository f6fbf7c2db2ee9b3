// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// aggregates so that zero values built outside their constructors are rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the embedding value went through its constructor.
//
// Example:
//
//	var ErrApproveUserCommandIsNotConstructed = errors.New("ApproveUserCommand must be created via NewApproveUserCommand")
//
//	type ApproveUserCommand struct {
//	    targetID kernel.ID
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c ApproveUserCommand) Validate() error {
//	    return c.guard.Validate(ErrApproveUserCommandIsNotConstructed)
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
