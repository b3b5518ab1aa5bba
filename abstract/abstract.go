// Package abstract shows abstract classes and interfaces.
//
// The method set a type must provide is an interface, checked by the compiler
// (see the assertions below). A base struct that must never be used on its
// own takes the class tag of whoever embeds it and refuses to be built for
// its own tag; its placeholder methods fail with ErrNotImplemented until a
// subtype shadows them.
package abstract

import (
	"log"

	"github.com/marcodamonte/oopconcepts/internal/class"
	"github.com/marcodamonte/oopconcepts/internal/console"
)

// Abstract is the method set AbstractClass demands from its subtypes.
type Abstract interface {
	AbstractMethod() error
}

// Compile-time checks: only ConcreteClass is guaranteed a real
// implementation, but the base satisfies the shape too.
var (
	_ Abstract = (*AbstractClass)(nil)
	_ Abstract = (*ConcreteClass)(nil)
)

var (
	AbstractClassInfo = class.New("AbstractClass", nil)
	ConcreteClassInfo = class.New("ConcreteClass", AbstractClassInfo)
)

type AbstractClass struct {
	info *class.Info
	log  *log.Logger
}

// NewAbstractClass always fails: AbstractClass exists only to be embedded.
func NewAbstractClass(logger *log.Logger) (*AbstractClass, error) {
	return NewBase(logger, AbstractClassInfo)
}

// NewBase is the base constructor subtypes chain to, passing their own tag.
// The tag must descend from AbstractClassInfo:
//
//	var LazyInfo = class.New("Lazy", abstract.AbstractClassInfo)
//	base, err := abstract.NewBase(logger, LazyInfo)
func NewBase(logger *log.Logger, target *class.Info) (*AbstractClass, error) {
	if err := class.Guard(target, AbstractClassInfo); err != nil {
		return nil, err
	}
	return &AbstractClass{info: target, log: console.Or(logger)}, nil
}

// Class returns the tag the instance was built with.
func (a *AbstractClass) Class() *class.Info {
	if a == nil {
		return nil
	}
	return a.info
}

// AbstractMethod is the placeholder subtypes must shadow. It also answers
// through a nil embedded base.
func (a *AbstractClass) AbstractMethod() error {
	if a == nil {
		return class.NotImplemented(AbstractClassInfo, "AbstractMethod")
	}
	return class.NotImplemented(a.info, "AbstractMethod")
}

// ConcreteClass fulfils Abstract.
type ConcreteClass struct {
	*AbstractClass
}

func NewConcreteClass(logger *log.Logger) (*ConcreteClass, error) {
	base, err := NewBase(logger, ConcreteClassInfo)
	if err != nil {
		return nil, err
	}
	return &ConcreteClass{AbstractClass: base}, nil
}

func (c *ConcreteClass) AbstractMethod() error {
	c.log.Println("This is abstract method")
	return nil
}
