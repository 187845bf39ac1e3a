package loader

import (
	"log/slog"
	"path"
	"slices"
	"strings"
)

// Context loads documents by logical path. Relative paths are resolved
// against the directory of the document being loaded.
type Context struct {
	registry *Registry
	stack    []string
}

// NewContext returns a context loading from registry.
func NewContext(registry *Registry) *Context {
	return &Context{registry: registry}
}

// Path returns the logical path of the document being loaded, or "" at the
// top level.
func (c *Context) Path() string {
	if len(c.stack) == 0 {
		return ""
	}

	return c.stack[len(c.stack)-1]
}

// Resolve returns the logical path p refers to from the current document.
func (c *Context) Resolve(p string) string {
	if path.IsAbs(p) || c.Path() == "" {
		return path.Clean(p)
	}

	return path.Join(path.Dir(c.Path()), p)
}

// Load creates a fresh loader for the document at p and runs it. Each call
// yields a distinct loader, and so a distinct root and controller.
func (c *Context) Load(p string) (Loader, error) {
	p = c.Resolve(p)

	if slices.Contains(c.stack, p) {
		return nil, ErrIncludeCycle.With(
			slog.String("path", p),
			slog.String("chain", strings.Join(append(slices.Clone(c.stack), p), " → ")),
		)
	}

	f, ok := c.registry.Factory(p)
	if !ok {
		return nil, ErrNoLoader.With(slog.String("path", p))
	}

	l := f()

	nested := &Context{registry: c.registry, stack: append(slices.Clone(c.stack), p)}
	if _, err := l.Load(nested); err != nil {
		return nil, err
	}

	return l, nil
}
