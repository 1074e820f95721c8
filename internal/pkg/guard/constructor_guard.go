// Package guard holds ConstructorGuard, the marker every value object,
// command and query in the service embeds to tell a constructed value from
// a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. A struct that embeds
// one and was built as a literal fails its Validate method.
//
//	type DeliveryMode struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (m DeliveryMode) Validate() error {
//	    return m.guard.Validate(ErrDeliveryModeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from constructors only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
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
