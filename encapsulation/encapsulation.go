// Package encapsulation shows private members in Go.
//
// Visibility is decided by the first letter of the identifier: lower-case
// fields and methods can only be named inside the package that declares them.
// Code elsewhere that writes w.privateField does not compile.
package encapsulation

import (
	"log"

	"github.com/marcodamonte/oopconcepts/internal/console"
)

type WithPrivate struct {
	privateField string
	log          *log.Logger
}

func NewWithPrivate(logger *log.Logger, value string) *WithPrivate {
	return &WithPrivate{privateField: value, log: console.Or(logger)}
}

// GetPrivateField exposes the value, not the field.
func (w *WithPrivate) GetPrivateField() string {
	return w.privateField
}

func (w *WithPrivate) privateMethod() {
	w.log.Println("This is a private method")
}

// PublicMethod is the only way to reach privateMethod from outside.
func (w *WithPrivate) PublicMethod() {
	w.privateMethod()
}
