package tr

import (
	"fmt"
	"slices"
)

// Dependent is something a cell notifies when its value changes. It is either
// a *Cell[T], which receives the value through Set, or a *Listener[T].
type Dependent[T any] interface {
	isDependent()
}

func (c *Cell[T]) isDependent() {}

// Listener wraps a callback so it can be bound to a cell. Binding is by
// pointer identity, so keep the *Listener around to Unbind it later.
type Listener[T any] struct {
	fn func(T)
}

func (l *Listener[T]) isDependent() {}

// Listen returns a Listener that calls fn with each new value. Binding a
// Listener with a nil fn is reported as ErrInvalidArgument.
func Listen[T any](fn func(T)) *Listener[T] {
	return &Listener[T]{fn: fn}
}

// Bind registers d to be notified on every change and synchronizes it with
// the current value straight away. Binding the same dependent twice is a
// no-op.
func (c *Cell[T]) Bind(d Dependent[T]) {
	if isNilDependent[T](d) {
		c.report(fmt.Errorf("%w: nil dependent", ErrInvalidArgument))
		return
	}
	if l, ok := d.(*Listener[T]); ok && l.fn == nil {
		c.report(fmt.Errorf("%w: listener callback must be a function", ErrInvalidArgument))
		return
	}
	if c.disposed || slices.Contains(c.dependents, d) {
		return
	}
	c.dependents = append(c.dependents, d)
	c.dispatch(d, c.value)
}

// Unbind removes d. Unknown dependents are ignored.
func (c *Cell[T]) Unbind(d Dependent[T]) {
	if i := slices.Index(c.dependents, d); i >= 0 {
		c.dependents = slices.Delete(c.dependents, i, i+1)
	}
}

// propagate notifies dependents in bind order. A dependent that is a cell
// finishes its own propagation before the next sibling runs.
// TODO: cycles recurse until the stack overflows; a topological pass would
// let them be detected.
func (c *Cell[T]) propagate(v T) {
	if len(c.dependents) == 0 {
		return
	}
	for _, d := range slices.Clone(c.dependents) {
		if c.disposed {
			return
		}
		c.dispatch(d, v)
	}
}

func (c *Cell[T]) dispatch(d Dependent[T], v T) {
	defer func() {
		if r := recover(); r != nil {
			c.report(fmt.Errorf("dependent: %w", recovered(r)))
		}
	}()

	switch d := d.(type) {
	case *Cell[T]:
		d.Set(v)
	case *Listener[T]:
		if d.fn != nil {
			d.fn(v)
		}
	default:
		panic(fmt.Sprintf("unknown dependent %T", d))
	}
}

func isNilDependent[T comparable](d Dependent[T]) bool {
	switch d := d.(type) {
	case nil:
		return true
	case *Cell[T]:
		return d == nil
	case *Listener[T]:
		return d == nil
	}
	return false
}
