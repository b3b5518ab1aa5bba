// Package methods shows plain instance methods: behaviour attached to a type
// through a receiver, called only for what it prints.
package methods

import (
	"log"

	"github.com/marcodamonte/oopconcepts/internal/console"
)

type MyClass3 struct {
	value int
	log   *log.Logger
}

func NewMyClass3(logger *log.Logger, value int) *MyClass3 {
	return &MyClass3{value: value, log: console.Or(logger)}
}

// Method1 prints a fixed line.
func (c *MyClass3) Method1() {
	c.log.Println("method1")
}

// Method2 prints the value the instance was built with.
func (c *MyClass3) Method2() {
	c.log.Println(c.value)
}
