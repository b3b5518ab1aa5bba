package abstract

import (
	"log"

	"github.com/marcodamonte/oopconcepts/internal/class"
	"github.com/marcodamonte/oopconcepts/internal/console"
)

// Interface is what InterfaceClass stands for.
type Interface interface {
	InterfaceMethod() error
}

var _ Interface = (*ConcreteClass2)(nil)

var (
	InterfaceClassInfo = class.New("InterfaceClass", nil)
	ConcreteClass2Info = class.New("ConcreteClass2", InterfaceClassInfo)
)

// InterfaceClass, unlike AbstractClass, can be built. Calling its method
// without overriding it is what fails.
type InterfaceClass struct {
	info *class.Info
	log  *log.Logger
}

func NewInterfaceClass(logger *log.Logger) *InterfaceClass {
	return &InterfaceClass{info: InterfaceClassInfo, log: console.Or(logger)}
}

func (i *InterfaceClass) InterfaceMethod() error {
	if i == nil {
		return class.NotImplemented(InterfaceClassInfo, "InterfaceMethod")
	}
	return class.NotImplemented(i.info, "InterfaceMethod")
}

type ConcreteClass2 struct {
	*InterfaceClass
}

func NewConcreteClass2(logger *log.Logger) *ConcreteClass2 {
	base := NewInterfaceClass(logger)
	base.info = ConcreteClass2Info
	return &ConcreteClass2{InterfaceClass: base}
}

func (c *ConcreteClass2) InterfaceMethod() error {
	c.log.Println("This is interface method")
	return nil
}
