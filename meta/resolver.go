package meta

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/fxc/log"
	"github.com/ardnew/fxc/markup"
)

// ImplicitImport is searched before every declared wildcard import.
var ImplicitImport = markup.Import{Package: "java.lang"}

// maxSuggestions bounds the did-you-mean candidates attached to errors.
const maxSuggestions = 3

// Option configures a [Resolver].
type Option func(config) config

type config struct {
	logger log.Logger
}

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

// Resolver answers type and member questions for one translation run.
// Every answer, including a negative one, is memoized for the lifetime of
// the Resolver. A Resolver is not safe for concurrent use.
type Resolver struct {
	provider Provider
	imports  []markup.Import
	cfg      config

	names    map[markup.QName]*Type
	types    map[string]*Type
	lineages map[string][]*Type
	cycles   map[string]bool
	members  map[memberKey]*Member
	access   map[string]map[string]accessResult
}

type memberKey struct {
	owner string
	name  string
	arity int
}

type accessResult struct {
	access Access
	err    error
}

// NewResolver returns a Resolver for a document with the given imports.
func NewResolver(provider Provider, imports []markup.Import, opts ...Option) *Resolver {
	var cfg config
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return &Resolver{
		provider: provider,
		imports:  append([]markup.Import{ImplicitImport}, imports...),
		cfg:      cfg,
		names:    make(map[markup.QName]*Type),
		types:    make(map[string]*Type),
		lineages: make(map[string][]*Type),
		cycles:   make(map[string]bool),
		members:  make(map[memberKey]*Member),
		access:   make(map[string]map[string]accessResult),
	}
}

// Resolve finds the descriptor for a class name as written in the document.
// A qualified name is looked up directly. A simple name is tried against
// each single-class import with the same name, then against each wildcard
// import in declaration order.
func (r *Resolver) Resolve(name markup.QName) (*Type, bool) {
	if t, ok := r.names[name]; ok {
		return t, t != nil
	}

	t := r.resolve(name)
	r.names[name] = t

	r.cfg.logger.Trace("resolve",
		slog.String("name", name.String()),
		slog.Bool("found", t != nil),
	)

	return t, t != nil
}

func (r *Resolver) resolve(name markup.QName) *Type {
	if name.Qualified() {
		t, _ := r.Lookup(name.String())

		return t
	}

	for _, imp := range r.imports {
		if !imp.Wildcard() && imp.Name == name.Name {
			if t, ok := r.Lookup(imp.QName().String()); ok {
				return t
			}
		}
	}

	for _, imp := range r.imports {
		if imp.Wildcard() {
			if t, ok := r.Lookup(imp.Package + "." + name.Name); ok {
				return t
			}
		}
	}

	return nil
}

// ResolveType is like [Resolver.Resolve] but reports absence, and cyclic
// inheritance, as errors.
func (r *Resolver) ResolveType(name markup.QName) (*Type, error) {
	t, ok := r.Resolve(name)
	if !ok {
		err := ErrClassNotFound.With(slog.String("class", name.String()))
		if s := r.suggestClasses(name); len(s) > 0 {
			err = err.With(slog.String("suggest", strings.Join(s, ", ")))
		}

		return nil, err
	}

	r.Lineage(t)

	if r.cycles[t.Name] {
		return nil, ErrInheritanceCycle.With(slog.String("class", t.Name))
	}

	return t, nil
}

// Lookup finds a descriptor by fully qualified name.
func (r *Resolver) Lookup(name string) (*Type, bool) {
	if t, ok := r.types[name]; ok {
		return t, t != nil
	}

	t, ok := r.provider.Lookup(markup.ParseQName(name))
	if !ok {
		t = nil
	}

	r.types[name] = t

	return t, t != nil
}

// Lineage returns t followed by its known supertypes in depth-first
// declaration order, each appearing once. Supertypes without a descriptor
// are skipped.
func (r *Resolver) Lineage(t *Type) []*Type {
	if l, ok := r.lineages[t.Name]; ok {
		return l
	}

	var (
		out     []*Type
		seen    = make(map[string]bool)
		onPath  = make(map[string]bool)
		cyclic  bool
		descend func(*Type)
	)

	descend = func(t *Type) {
		if onPath[t.Name] {
			cyclic = true

			return
		}

		if seen[t.Name] {
			return
		}

		seen[t.Name] = true
		onPath[t.Name] = true
		out = append(out, t)

		for _, name := range t.Extends {
			if s, ok := r.Lookup(name); ok {
				descend(s)
			}
		}

		onPath[t.Name] = false
	}

	descend(t)

	r.lineages[t.Name] = out
	r.cycles[t.Name] = cyclic

	return out
}

// KindOf returns the first kind declared along the lineage of t.
func (r *Resolver) KindOf(t *Type) Kind {
	for _, s := range r.Lineage(t) {
		if s.Kind != "" {
			return s.Kind
		}
	}

	return KindObject
}

// KindOfName returns the kind of a primitive or described type name.
// Unknown names are objects.
func (r *Resolver) KindOfName(name string) Kind {
	if k, ok := primitives[name]; ok {
		return k
	}

	if t, ok := r.Lookup(name); ok {
		return r.KindOf(t)
	}

	return KindObject
}

// Method returns the first method of the given name and arity along the
// lineage of t.
func (r *Resolver) Method(t *Type, name string, arity int) (*Member, bool) {
	return r.member(t, memberKey{owner: t.Name, name: name, arity: arity})
}

// Field returns the first field of the given name along the lineage of t.
func (r *Resolver) Field(t *Type, name string) (*Member, bool) {
	return r.member(t, memberKey{owner: t.Name, name: name, arity: -1})
}

func (r *Resolver) member(t *Type, key memberKey) (*Member, bool) {
	if m, ok := r.members[key]; ok {
		return m, m != nil
	}

	var found *Member

search:
	for _, s := range r.Lineage(t) {
		for i := range s.Members {
			m := &s.Members[i]
			if m.Name != key.name {
				continue
			}

			if (key.arity < 0 && m.Field) || (key.arity >= 0 && m.Method(key.arity)) {
				found = m

				break search
			}
		}
	}

	r.members[key] = found

	return found, found != nil
}

// Setter returns the single-argument setter of property.
func (r *Resolver) Setter(t *Type, property string) (*Member, bool) {
	return r.Method(t, MethodName(PrefixSet, property), 1)
}

// Getter returns the no-argument getter of property.
func (r *Resolver) Getter(t *Type, property string) (*Member, bool) {
	return r.Method(t, MethodName(PrefixGet, property), 0)
}

// HasDefaultConstructor reports whether t declares a no-argument constructor.
func (r *Resolver) HasDefaultConstructor(t *Type) bool {
	return slices.ContainsFunc(t.Constructors, func(c Constructor) bool {
		return len(c.Params) == 0
	})
}

// NamedConstructor returns the first constructor of t whose parameters are
// all named.
func (r *Resolver) NamedConstructor(t *Type) (Constructor, bool) {
	for _, c := range t.Constructors {
		if c.Named() {
			return c, true
		}
	}

	return Constructor{}, false
}

// DefaultProperty returns the first default property declared along the
// lineage of t.
func (r *Resolver) DefaultProperty(t *Type) (string, bool) {
	for _, s := range r.Lineage(t) {
		if s.DefaultProperty != "" {
			return s.DefaultProperty, true
		}
	}

	return "", false
}

// Constant reports whether name is a constant declared along the lineage
// of t.
func (r *Resolver) Constant(t *Type, name string) bool {
	for _, s := range r.Lineage(t) {
		if slices.Contains(s.Constants, name) {
			return true
		}
	}

	return false
}

// InjectedMembers returns the members of t marked for injection in
// declaration order. Inherited members are not included.
func (r *Resolver) InjectedMembers(t *Type) []Member {
	var out []Member

	for _, m := range t.Members {
		if m.Inject {
			out = append(out, m)
		}
	}

	return out
}

// Properties returns the names of every property with an accessor along the
// lineage of t, sorted.
func (r *Resolver) Properties(t *Type) []string {
	set := make(map[string]struct{})

	for _, s := range r.Lineage(t) {
		for _, m := range s.Members {
			switch {
			case m.Method(1) && PropertyName(PrefixSet, m.Name) != "":
				set[PropertyName(PrefixSet, m.Name)] = struct{}{}
			case m.Method(0) && PropertyName(PrefixGet, m.Name) != "":
				set[PropertyName(PrefixGet, m.Name)] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}

	slices.Sort(out)

	return out
}

func (r *Resolver) suggestClasses(name markup.QName) []string {
	l, ok := r.provider.(Lister)
	if !ok {
		return nil
	}

	names := l.Names()

	simple := make([]string, len(names))
	for i, n := range names {
		simple[i] = markup.ParseQName(n).Name
	}

	matches := fuzzy.Find(name.Name, simple)

	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}

		if !slices.Contains(out, names[m.Index]) {
			out = append(out, names[m.Index])
		}
	}

	return out
}

// suggest returns up to maxSuggestions candidates fuzzily matching pattern.
func suggest(pattern string, candidates []string) []string {
	matches := fuzzy.Find(pattern, candidates)

	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches[:min(len(matches), maxSuggestions)] {
		out = append(out, m.Str)
	}

	return out
}
