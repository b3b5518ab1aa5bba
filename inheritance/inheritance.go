// Package inheritance shows what Go offers in place of subclassing: struct
// embedding. The embedded type's methods are promoted to the outer type, so a
// "child" answers every call its "parent" does without redeclaring it, and
// may add or shadow methods of its own.
package inheritance

import (
	"log"

	"github.com/marcodamonte/oopconcepts/internal/console"
)

type ParentClass struct {
	log *log.Logger
}

func NewParentClass(logger *log.Logger) *ParentClass {
	return &ParentClass{log: console.Or(logger)}
}

func (p *ParentClass) ParentMethod() {
	p.log.Println("This is from the parent class")
}

// ChildClass gets ParentMethod through the embedded *ParentClass.
type ChildClass struct {
	*ParentClass
}

func NewChildClass(logger *log.Logger) *ChildClass {
	return &ChildClass{ParentClass: NewParentClass(logger)}
}

func (c *ChildClass) ChildMethod() {
	c.log.Println("This is from the child class")
}
