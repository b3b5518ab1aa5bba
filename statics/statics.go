// Package statics shows members that belong to a type rather than to an
// instance.
//
// A static method in Go is a method on an empty struct reached through a
// package-level value; embedding that struct passes the method on to a
// "child" the same way instance methods are promoted. A static field is a
// package-level variable that every constructor of the type updates.
package statics

import (
	"log"
	"sync/atomic"

	"github.com/marcodamonte/oopconcepts/internal/console"
)

// StaticType carries the static methods of StaticClass. It has no state;
// the zero value is the class.
type StaticType struct{}

// StaticClass is called directly, without constructing anything:
//
//	statics.StaticClass.StaticMethod(logger)
var StaticClass StaticType

func (StaticType) StaticMethod(logger *log.Logger) {
	console.Or(logger).Println("This is static method")
}

// ChildStaticType inherits StaticMethod by embedding StaticType.
type ChildStaticType struct {
	StaticType
}

var ChildStaticClass ChildStaticType

func (ChildStaticType) ChildStaticMethod(logger *log.Logger) {
	console.Or(logger).Println("This is child static method")
}

// ── Fields ───────────────────────────────────────────────────────────────────

// WithPublicField has an exported, per-instance counter.
type WithPublicField struct {
	PublicCount int
}

// NewWithPublicField increments PublicCount once, so a fresh value reads 1.
func NewWithPublicField() *WithPublicField {
	w := &WithPublicField{}
	w.PublicCount++
	return w
}

// staticCount is shared by every WithStaticField ever built, derived types
// included.
var staticCount atomic.Int64

// StaticCount reads the shared counter.
func StaticCount() int64 {
	return staticCount.Load()
}

type WithStaticField struct {
	// serial is the counter value right after this instance was built.
	serial int64
}

func NewWithStaticField() *WithStaticField {
	return &WithStaticField{serial: staticCount.Add(1)}
}

// Serial returns the 1-based construction order of w.
func (w *WithStaticField) Serial() int64 { return w.serial }

// DerivedWithStaticField chains to the base constructor, so it counts
// against the same static field.
type DerivedWithStaticField struct {
	*WithStaticField
}

func NewDerivedWithStaticField() *DerivedWithStaticField {
	return &DerivedWithStaticField{WithStaticField: NewWithStaticField()}
}
