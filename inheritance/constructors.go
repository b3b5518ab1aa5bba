package inheritance

import (
	"log"

	"github.com/marcodamonte/oopconcepts/internal/class"
	"github.com/marcodamonte/oopconcepts/internal/console"
)

// Class tags for the constructor-chaining family.
var (
	ParentInfo = class.New("Parent", nil)
	ChildInfo  = class.New("Child", ParentInfo)
	Child2Info = class.New("Child2", ParentInfo)
	Child3Info = class.New("Child3", ParentInfo)
	Child4Info = class.New("Child4", ParentInfo)
)

// Parent announces its construction, so every chain below can be checked
// from output.
type Parent struct {
	log *log.Logger
}

func NewParent(logger *log.Logger) *Parent {
	p := &Parent{log: console.Or(logger)}
	p.log.Println("Parent constructor")
	return p
}

func (p *Parent) SayHello() {
	p.log.Println("Hello from parent")
}

// Child runs the base constructor first, then its own body.
type Child struct {
	*Parent
}

func NewChild(logger *log.Logger) *Child {
	c := &Child{Parent: NewParent(logger)}
	c.log.Println("Child constructor")
	return c
}

// SayHello shadows the promoted method and calls it explicitly, the way
// super.sayHello() would.
func (c *Child) SayHello() {
	c.Parent.SayHello()
	c.log.Println("Hello from child")
}

// Child2 never builds its *Parent. The constructor runs its own body, then
// fails as soon as it needs inherited state.
type Child2 struct {
	*Parent
	log *log.Logger
}

func NewChild2(logger *log.Logger) (*Child2, error) {
	c := &Child2{log: console.Or(logger)}
	c.log.Println("Child constructor")
	if err := c.this(); err != nil {
		return nil, err
	}
	return c, nil
}

// this is the gate every use of inherited state goes through.
func (c *Child2) this() error {
	if c.Parent == nil {
		return class.UninitializedBase(Child2Info)
	}
	return nil
}

// Child3 has no constructor body of its own: building it is building the
// base with the same arguments.
type Child3 struct {
	*Parent
}

func NewChild3(logger *log.Logger) *Child3 {
	return &Child3{Parent: NewParent(logger)}
}

// Replacement is what NewChild4 hands back instead of a Child4. It shares
// nothing with Parent.
type Replacement struct {
	SomeProp string
}

// NewChild4 is a factory that skips base construction altogether and returns
// an unrelated value. Parent's constructor never runs.
func NewChild4(logger *log.Logger) *Replacement {
	console.Or(logger).Println("Child constructor")
	return &Replacement{SomeProp: "someValue"}
}
