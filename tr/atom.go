package tr

// AtomConfig describes a keyed source cell.
type AtomConfig[T comparable] struct {
	Key     string
	Default T

	// Registry, when set, records the atom under Key.
	Registry *Registry
	OnError  ErrorHandler
}

// Atom is New(cfg.Default) tagged with cfg.Key.
func Atom[T comparable](cfg AtomConfig[T]) *Cell[T] {
	c := New(cfg.Default, WithKey(cfg.Key), WithErrorHandler(cfg.OnError))
	cfg.Registry.track(c)
	return c
}

// SelectorConfig describes a keyed derivation.
type SelectorConfig[T, R comparable] struct {
	Key string
	Get func(...T) R

	// Registry, when set, records each selector cell under Key. Building a
	// second cell from the same factory reports ErrDuplicateKey.
	Registry *Registry
	OnError  ErrorHandler
}

// Selector is Compute(cfg.Get) with the resulting cells tagged with cfg.Key.
func Selector[T, R comparable](cfg SelectorConfig[T, R]) func(sources ...*Cell[T]) *Cell[R] {
	compute := Compute(cfg.Get, WithKey(cfg.Key), WithErrorHandler(cfg.OnError))
	return func(sources ...*Cell[T]) *Cell[R] {
		c := compute(sources...)
		cfg.Registry.track(c)
		return c
	}
}
