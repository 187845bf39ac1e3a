package meta

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/ardnew/fxc/markup"
)

// Provider supplies type descriptors by fully qualified name. A Provider is
// shared by concurrent translations and must be safe for concurrent reads.
type Provider interface {
	Lookup(name markup.QName) (*Type, bool)
}

// Lister is implemented by providers that can enumerate their types.
type Lister interface {
	Names() []string
}

// Table is a static set of descriptors.
type Table struct {
	mu    sync.RWMutex
	types map[string]*Type
}

// NewTable returns a table holding the given descriptors.
func NewTable(types ...*Type) (*Table, error) {
	t := &Table{types: make(map[string]*Type, len(types))}

	for _, typ := range types {
		if err := t.Register(typ); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Register adds a descriptor. Registering a name twice is an error.
func (t *Table) Register(typ *Type) error {
	if err := typ.validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.types[typ.Name]; ok {
		return ErrDuplicateType.With(slog.String("type", typ.Name))
	}

	t.types[typ.Name] = typ

	return nil
}

// Lookup implements [Provider].
func (t *Table) Lookup(name markup.QName) (*Type, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	typ, ok := t.types[name.String()]

	return typ, ok
}

// Names returns the registered type names in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Sorted(maps.Keys(t.types))
}

// Len returns the number of registered types.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.types)
}

// Chain consults each provider in order and returns the first match.
type Chain []Provider

// Lookup implements [Provider].
func (c Chain) Lookup(name markup.QName) (*Type, bool) {
	for _, p := range c {
		if typ, ok := p.Lookup(name); ok {
			return typ, true
		}
	}

	return nil, false
}

// Names returns the union of the names of every listing provider.
func (c Chain) Names() []string {
	seen := make(map[string]struct{})

	for _, p := range c {
		if l, ok := p.(Lister); ok {
			for _, n := range l.Names() {
				seen[n] = struct{}{}
			}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}
