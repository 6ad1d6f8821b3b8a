// Package guard implements a defensive construction pattern for value objects,
// commands, and entities. Embedding a ConstructorGuard in a struct makes it
// possible to detect whether the struct was created through its designated
// constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for a zero-value object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether its owner was created via a constructor.
// The zero value reports not-constructed; NewConstructorGuard reports
// constructed. Domain objects embed it and check it in their Validate method
// so that invariants enforced at construction cannot be bypassed.
//
// Example:
//
//	type RegisterCropCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRegisterCropCommand(name string) (RegisterCropCommand, error) {
//	    if name == "" {
//	        return RegisterCropCommand{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return RegisterCropCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RegisterCropCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterCropCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was properly constructed. Otherwise it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
