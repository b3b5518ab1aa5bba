// Package accessors shows getters and setters in Go.
//
// Go has no property syntax: a read is a method call (Value), a write is a
// method call (SetValue). What the property syntax buys elsewhere, running
// code on every read and write, is kept by routing all access to the
// unexported backing field through those two methods.
package accessors

// Hooks are the side effects a Property runs around each access.
type Hooks[T any] struct {
	OnGet func()  // runs before the value is returned
	OnSet func(T) // runs with the new value before it is stored
}

// Property is a single value whose reads and writes go through Hooks. It is
// the closest Go gets to an object literal with get/set members: the
// behaviour is supplied inline, at the point the value is built.
//
//	obj := accessors.NewProperty(10, accessors.Hooks[int]{
//		OnGet: func() { fmt.Println("get value") },
//	})
type Property[T any] struct {
	value T
	hooks Hooks[T]
}

// NewProperty returns a Property seeded with initial.
func NewProperty[T any](initial T, hooks Hooks[T]) *Property[T] {
	return &Property[T]{value: initial, hooks: hooks}
}

// Get runs OnGet, then returns the current value.
func (p *Property[T]) Get() T {
	if p.hooks.OnGet != nil {
		p.hooks.OnGet()
	}
	return p.value
}

// Set runs OnSet with v, then stores v.
func (p *Property[T]) Set(v T) {
	if p.hooks.OnSet != nil {
		p.hooks.OnSet(v)
	}
	p.value = v
}
