// Package class holds the runtime class tags and the error kinds shared by
// the demonstration packages.
//
// Go has no classes, so "which constructor is running" is answered with an
// explicit tag: every demonstrated type declares a package-level *Info and
// passes it to its base constructor. A base that must not be constructed
// directly compares the tag it receives against its own.
package class

// Info describes one demonstrated type at runtime.
type Info struct {
	Name   string // e.g. "ConcreteClass"
	Parent *Info  // nil for root types
}

// New declares a class tag. parent may be nil.
func New(name string, parent *Info) *Info {
	return &Info{Name: name, Parent: parent}
}

// String returns the class name.
func (c *Info) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

// IsChildOf reports whether parent appears anywhere above c in the chain.
func (c *Info) IsChildOf(parent *Info) bool {
	if c == nil || c.Parent == nil {
		return false
	}
	if c.Parent == parent {
		return true
	}
	return c.Parent.IsChildOf(parent)
}

// Guard is the constructor check of an abstract base: it fails when the
// class being built is the abstract class itself, and succeeds for any tag
// that descends from it.
func Guard(target, abstract *Info) error {
	if target == nil || target == abstract || !target.IsChildOf(abstract) {
		return &Error{Op: "new", Class: target.String(), Err: ErrInstantiation}
	}
	return nil
}
