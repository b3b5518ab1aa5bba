package class

import (
	"errors"
	"fmt"
)

// Sentinel errors for the four ways a class contract can be broken. Callers
// compare against them with errors.Is, even when wrapped in an *Error.
var (
	// ErrInstantiation is returned when a type that only exists to be
	// embedded is constructed directly.
	ErrInstantiation = errors.New("cannot instantiate abstract class")

	// ErrNotImplemented is returned by a base method that a subtype was
	// expected to override.
	ErrNotImplemented = errors.New("must override abstract method")

	// ErrAccessViolation is returned when code outside a type reaches for an
	// unexported member at runtime (the compiler rejects the static form).
	ErrAccessViolation = errors.New("private member access")

	// ErrUninitializedBase is returned when a derived type touches inherited
	// state before its embedded base was constructed.
	ErrUninitializedBase = errors.New("must call super constructor in derived class before accessing 'this'")
)

// Error carries the operation, the class and the member involved in a broken
// contract. It follows the os.PathError shape: rich message, inspectable cause.
type Error struct {
	Op     string // "new", "call", "get", …
	Class  string
	Member string // empty for constructors
	Err    error
}

func (e *Error) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Class, e.Err)
	}
	return fmt.Sprintf("%s %s.%s: %v", e.Op, e.Class, e.Member, e.Err)
}

// Unwrap exposes the sentinel to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }

// NotImplemented builds the error a base method returns when it was meant to
// be overridden.
func NotImplemented(c *Info, method string) error {
	return &Error{Op: "call", Class: c.String(), Member: method, Err: ErrNotImplemented}
}

// UninitializedBase builds the error for a derived constructor that skipped
// its base.
func UninitializedBase(c *Info) error {
	return &Error{Op: "new", Class: c.String(), Err: ErrUninitializedBase}
}

// AccessViolation builds the error for a runtime reach into an unexported
// member.
func AccessViolation(typeName, member string) error {
	return &Error{Op: "get", Class: typeName, Member: member, Err: ErrAccessViolation}
}
