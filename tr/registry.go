package tr

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Keyed is a cell of any element type that carries a key.
type Keyed interface {
	Key() string
	Dispose()
}

type registryEntry struct {
	key  string
	cell Keyed
}

// Registry indexes keyed cells so they can be found and torn down together.
// The zero value is an empty registry ready to use.
type Registry struct {
	entries map[uint64]registryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[uint64]registryEntry{}}
}

func keyID(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Register records c under c.Key(). Empty keys and keys already in use are
// rejected.
func (r *Registry) Register(c Keyed) error {
	if c == nil {
		return fmt.Errorf("%w: nil cell", ErrInvalidArgument)
	}
	if n, ok := c.(interface{ isNil() bool }); ok && n.isNil() {
		return fmt.Errorf("%w: nil cell", ErrInvalidArgument)
	}
	key := c.Key()
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}
	id := keyID(key)
	if existing, ok := r.entries[id]; ok {
		if existing.key != key {
			return fmt.Errorf("%w: %q collides with %q", ErrDuplicateKey, key, existing.key)
		}
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	if r.entries == nil {
		r.entries = map[uint64]registryEntry{}
	}
	r.entries[id] = registryEntry{key: key, cell: c}
	return nil
}

// track registers c and reports failures through the cell's error handler.
func (r *Registry) track(c interface {
	Keyed
	report(error)
}) {
	if r == nil {
		return
	}
	if err := r.Register(c); err != nil {
		c.report(err)
	}
}

// Remove forgets key without disposing its cell.
func (r *Registry) Remove(key string) bool {
	id := keyID(key)
	e, ok := r.entries[id]
	if !ok || e.key != key {
		return false
	}
	delete(r.entries, id)
	return true
}

// Lookup returns the cell registered under key.
func Lookup[T comparable](r *Registry, key string) (*Cell[T], error) {
	e, ok := r.entries[keyID(key)]
	if !ok || e.key != key {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	c, ok := e.cell.(*Cell[T])
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T", ErrTypeMismatch, key, e.cell)
	}
	return c, nil
}

// Keys returns every registered key in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		keys = append(keys, e.key)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of registered cells.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Dispose disposes every registered cell, in key order, and empties the
// registry.
func (r *Registry) Dispose() {
	for _, key := range r.Keys() {
		r.entries[keyID(key)].cell.Dispose()
	}
	clear(r.entries)
}
