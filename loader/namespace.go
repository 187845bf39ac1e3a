package loader

import (
	"log/slog"
	"slices"
	"sync"
)

// Namespace maps ids to values. Each id may be published once. The zero
// value is ready to use and safe for concurrent use.
type Namespace[V any] struct {
	mu     sync.RWMutex
	values map[string]V
	order  []string
}

// NewNamespace returns an empty namespace.
func NewNamespace[V any]() *Namespace[V] { return &Namespace[V]{} }

// Publish registers v under id.
func (n *Namespace[V]) Publish(id string, v V) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.values[id]; ok {
		return ErrDuplicateID.With(slog.String("id", id))
	}

	if n.values == nil {
		n.values = make(map[string]V)
	}

	n.values[id] = v
	n.order = append(n.order, id)

	return nil
}

// Lookup returns the value published under id.
func (n *Namespace[V]) Lookup(id string) (V, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	v, ok := n.values[id]
	if !ok {
		return v, ErrUnknownID.With(slog.String("id", id))
	}

	return v, nil
}

// Has reports whether id has been published.
func (n *Namespace[V]) Has(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := n.values[id]

	return ok
}

// IDs returns the published ids in publication order.
func (n *Namespace[V]) IDs() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Clone(n.order)
}

// Len returns the number of published ids.
func (n *Namespace[V]) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.order)
}
