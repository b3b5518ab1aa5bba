package accessors

import (
	"log"

	"github.com/marcodamonte/oopconcepts/internal/console"
)

// DefaultValue is what NewMyClass seeds the backing field with.
const DefaultValue = 10

// MyClass is the struct form of the accessor pattern: the backing field is
// unexported and Value/SetValue log before touching it.
type MyClass struct {
	value int
	log   *log.Logger
}

// NewMyClass returns a MyClass holding DefaultValue.
func NewMyClass(logger *log.Logger) *MyClass {
	return &MyClass{value: DefaultValue, log: console.Or(logger)}
}

// Value logs "get value" and returns the backing field.
func (c *MyClass) Value() int {
	c.log.Println("get value")
	return c.value
}

// SetValue logs the new value and stores it.
func (c *MyClass) SetValue(v int) {
	c.log.Println("Setting value to", v)
	c.value = v
}

// MyClass2 is MyClass with the initial value chosen by the caller.
type MyClass2 struct {
	value int
	log   *log.Logger
}

// NewMyClass2 seeds the backing field with value; no SetValue is needed for
// the first read to return it.
func NewMyClass2(logger *log.Logger, value int) *MyClass2 {
	return &MyClass2{value: value, log: console.Or(logger)}
}

func (c *MyClass2) Value() int {
	c.log.Println("get value")
	return c.value
}

func (c *MyClass2) SetValue(v int) {
	c.log.Println("Setting value to", v)
	c.value = v
}
