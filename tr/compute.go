package tr

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Source is a cell of any element type seen from a derivation.
type Source interface {
	watch(fn func()) (stop func())
}

func (c *Cell[T]) watch(fn func()) func() {
	if c == nil {
		return func() {}
	}
	l := Listen(func(T) { fn() })
	c.Bind(l)
	return func() { c.Unbind(l) }
}

// Compute returns a factory for derived cells. Each cell it builds applies
// fn to the current values of its sources, in argument order, and recomputes
// whenever any source changes.
//
//	plus := tr.Compute(func(v ...int) int { return v[0] + v[1] })
//	sum := plus(a, b)
//
// Every recomputation reads all sources again. Cyclic graphs are not
// detected and recurse without bound.
func Compute[T, R comparable](fn func(...T) R, opts ...Option) func(sources ...*Cell[T]) *Cell[R] {
	return func(sources ...*Cell[T]) *Cell[R] {
		srcs := slices.Clone(sources)
		erased := make([]Source, len(srcs))
		for i, s := range srcs {
			erased[i] = s
		}
		return derive(func() R {
			values := make([]T, len(srcs))
			for i, s := range srcs {
				values[i] = s.Get()
			}
			return fn(values...)
		}, erased, opts)
	}
}

// derive builds a cell over fn and wires it to sources. A source listed more
// than once is watched once. Disposing the cell stops every watch before the
// cell itself is torn down.
func derive[R comparable](fn func() R, sources []Source, opts []Option) *Cell[R] {
	d := newCell[R](opts)
	d.init = func() (R, error) {
		return fn(), nil
	}

	wiring := true
	recompute := func() {
		if wiring || d.disposed {
			return
		}
		d.refresh()
	}

	seen := mapset.NewThreadUnsafeSet[Source]()
	for _, s := range sources {
		if s == nil || !seen.Add(s) {
			continue
		}
		d.cleanups = append(d.cleanups, s.watch(recompute))
	}
	wiring = false

	if v, ok := d.run(); ok {
		d.value = v
	}
	return d
}
