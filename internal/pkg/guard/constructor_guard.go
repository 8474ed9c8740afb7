// Package guard provides a lightweight defensive-programming primitive that
// ensures domain objects are only created through their designated constructor
// functions. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable: a guard created via NewConstructorGuard validates
// successfully, while the zero value fails validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard belongs to
// a zero-value object and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its owner was built through a constructor.
// The zero value is invalid; obtain one via NewConstructorGuard. The guard is
// immutable after creation and safe for concurrent use and copying by value.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state. Constructors
// of domain objects embed the result into the object they return.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was built via its constructor.
// For a zero-value guard it returns notConstructedErr, falling back to
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
