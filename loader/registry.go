package loader

import (
	"log/slog"
	"maps"
	"path"
	"slices"
	"sync"
)

// Loader builds the object tree of one document.
type Loader interface {
	// Load builds the tree, then creates and initializes the controller.
	Load(ctx *Context) (any, error)
	Root() any
	Controller() any
	Namespace() *Namespace[any]
}

// Factory creates a fresh Loader.
type Factory func() Loader

// Registry maps logical document paths to loader factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register associates a factory with a logical path. Paths are cleaned
// before use.
func (r *Registry) Register(p string, f Factory) error {
	p = path.Clean(p)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[p]; ok {
		return ErrDuplicatePath.With(slog.String("path", p))
	}

	r.factories[p] = f

	return nil
}

// Factory returns the factory registered for a logical path.
func (r *Registry) Factory(p string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[path.Clean(p)]

	return f, ok
}

// Paths returns the registered paths in sorted order.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.factories))
}
