package translate

import (
	"github.com/ardnew/fxc/log"
)

// DefaultRuntimePackage is the package of the runtime loader types
// referenced by generated programs.
const DefaultRuntimePackage = "fxc.loader"

// Option configures a translation.
type Option func(config) config

type config struct {
	logger       log.Logger
	typed        bool
	boundRefs    bool
	comments     bool
	publishFirst bool
	name         string
	path         string
	runtime      string
}

func makeConfig(opts ...Option) config {
	cfg := config{runtime: DefaultRuntimePackage}
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithLogger sets the logger used for translation diagnostics. The logger is
// also handed to the parser and resolver.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

// WithTypedLookups wraps namespace lookups and externally supplied objects
// in casts to their declared types.
func WithTypedLookups(typed bool) Option {
	return func(c config) config {
		c.typed = typed

		return c
	}
}

// WithBoundMethodRefs emits event handlers as method values bound to the
// loader instead of forwarding closures.
func WithBoundMethodRefs(bound bool) Option {
	return func(c config) config {
		c.boundRefs = bound

		return c
	}
}

// WithComments precedes each instantiation with a comment naming the
// element it was generated from.
func WithComments(comments bool) Option {
	return func(c config) config {
		c.comments = comments

		return c
	}
}

// WithPublishFirst publishes an identified object, and sets its id,
// immediately after it is declared rather than after its properties have
// been assigned.
func WithPublishFirst(first bool) Option {
	return func(c config) config {
		c.publishFirst = first

		return c
	}
}

// WithName sets the program name. By default it is derived from the path.
func WithName(name string) Option {
	return func(c config) config {
		c.name = name

		return c
	}
}

// WithPath sets the logical path of the document being translated.
func WithPath(path string) Option {
	return func(c config) config {
		c.path = path

		return c
	}
}

// WithRuntimePackage sets the package of the runtime loader types.
func WithRuntimePackage(pkg string) Option {
	return func(c config) config {
		if pkg != "" {
			c.runtime = pkg
		}

		return c
	}
}
