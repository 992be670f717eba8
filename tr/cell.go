// Package tr is a small, synchronous reactive graph: cells that can be read,
// written, observed and bound to dependents, plus derived cells that
// recompute when their sources change.
package tr

import "fmt"

// Cell is a reactive value container. A cell built from a literal holds the
// value written to it; a cell built from an initializer re-runs the
// initializer whenever it is written to or one of its sources changes.
//
// Cells are not safe for concurrent use. A graph of cells must be driven from
// a single goroutine, or the caller must serialize access to it.
type Cell[T comparable] struct {
	key     string
	onError ErrorHandler

	value T
	init  func() (T, error)

	// the last (old, new) transition that propagated
	lastOld, lastNew T
	hasLast          bool

	dependents []Dependent[T]
	observer   func(T)

	disposed bool
	cleanups []func()
}

func newCell[T comparable](opts []Option) *Cell[T] {
	o := applyOptions(opts)
	return &Cell[T]{
		key:     o.key,
		onError: o.onError,
	}
}

// New creates a source cell holding value.
func New[T comparable](value T, opts ...Option) *Cell[T] {
	c := newCell[T](opts)
	c.value = value
	return c
}

// NewFunc creates a cell whose value is produced by fn. fn runs once now and
// again on every write, the written value is ignored.
func NewFunc[T comparable](fn func() T, opts ...Option) *Cell[T] {
	if fn == nil {
		return NewFuncE[T](nil, opts...)
	}
	return NewFuncE(func() (T, error) {
		return fn(), nil
	}, opts...)
}

// NewFuncE is NewFunc for initializers that can fail. When fn fails the cell
// keeps its previous value, which is the zero value on the first run.
func NewFuncE[T comparable](fn func() (T, error), opts ...Option) *Cell[T] {
	c := newCell[T](opts)
	if fn == nil {
		c.report(fmt.Errorf("%w: nil initializer", ErrInvalidArgument))
		return c
	}
	c.init = fn
	if v, ok := c.run(); ok {
		c.value = v
	}
	return c
}

// Key returns the key the cell was tagged with, if any.
func (c *Cell[T]) Key() string {
	return c.key
}

// Get returns the last committed value. It is valid after Dispose.
func (c *Cell[T]) Get() T {
	return c.value
}

// Disposed reports whether Dispose has been called.
func (c *Cell[T]) Disposed() bool {
	return c.disposed
}

func (c *Cell[T]) isNil() bool {
	return c == nil
}

// Set writes v and returns the resulting value. Derived cells ignore v and
// recompute instead. Writes to a disposed cell are ignored. Writing a value
// equal to the current one never notifies dependents or the observer, so it
// does not re-synchronize a bound cell that was written to separately.
func (c *Cell[T]) Set(v T) T {
	if c.disposed {
		return c.value
	}
	if c.init != nil {
		return c.refresh()
	}
	return c.commit(v)
}

// Update writes fn(current). For reference payloads fn must return a new
// pointer, mutating in place defeats the stability check.
func (c *Cell[T]) Update(fn func(T) T) T {
	if c.disposed {
		return c.value
	}
	if c.init != nil {
		return c.refresh()
	}
	if fn == nil {
		c.report(fmt.Errorf("%w: nil updater", ErrInvalidArgument))
		return c.value
	}
	next, ok := c.apply(fn)
	if !ok {
		return c.value
	}
	return c.commit(next)
}

// Observe installs fn as the cell's only observer, replacing any previous
// one, and calls it with the current value.
func (c *Cell[T]) Observe(fn func(T)) *Cell[T] {
	if fn == nil {
		c.report(fmt.Errorf("%w: observer callback must be a function", ErrInvalidArgument))
		return c
	}
	if c.disposed {
		return c
	}
	c.observer = fn
	c.call(fn, c.value)
	return c
}

// Dispose detaches a derived cell from its sources and drops every dependent
// and the observer. It is irreversible and safe to call more than once.
func (c *Cell[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true

	cleanups := c.cleanups
	c.cleanups = nil
	for _, cleanup := range cleanups {
		cleanup()
	}

	c.dependents = nil
	c.observer = nil
}

func (c *Cell[T]) refresh() T {
	next, ok := c.run()
	if !ok {
		return c.value
	}
	return c.commit(next)
}

// commit stores next and, unless the write is stable, notifies dependents
// depth-first and then the observer.
func (c *Cell[T]) commit(next T) T {
	old := c.value
	c.value = next

	if old == next {
		return next
	}
	if c.hasLast && old == c.lastOld && next == c.lastNew {
		return next
	}
	c.lastOld, c.lastNew, c.hasLast = old, next, true

	c.propagate(next)

	if c.observer != nil && !c.disposed {
		c.call(c.observer, next)
	}
	return next
}

func (c *Cell[T]) run() (v T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.report(&ComputationError{Key: c.key, Err: recovered(r)})
			ok = false
		}
	}()

	v, err := c.init()
	if err != nil {
		c.report(&ComputationError{Key: c.key, Err: err})
		return v, false
	}
	return v, true
}

func (c *Cell[T]) apply(fn func(T) T) (v T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.report(&ComputationError{Key: c.key, Err: fmt.Errorf("updater: %w", recovered(r))})
			ok = false
		}
	}()
	return fn(c.value), true
}

func (c *Cell[T]) call(fn func(T), v T) {
	defer func() {
		if r := recover(); r != nil {
			c.report(fmt.Errorf("observer: %w", recovered(r)))
		}
	}()
	fn(v)
}

func (c *Cell[T]) report(err error) {
	h := c.onError
	if h == nil {
		h = defaultErrorHandler
	}
	h(c.key, err)
}
