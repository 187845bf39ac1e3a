package meta

import (
	"log/slog"
	"strings"
)

// AccessKind is the strategy used to assign a property.
type AccessKind int

const (
	// AccessSet calls a single-argument setter.
	AccessSet AccessKind = iota
	// AccessAppend adds each value to the list returned by a getter.
	AccessAppend
	// AccessInsert puts the value into the owner, a map, under the
	// property name.
	AccessInsert
)

// String returns the name of the strategy.
func (k AccessKind) String() string {
	switch k {
	case AccessSet:
		return "set"
	case AccessAppend:
		return "append"
	case AccessInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// ObjectType is the declared value type of list elements and map values.
const ObjectType = "java.lang.Object"

// Access describes how to assign one property of a type.
type Access struct {
	Kind   AccessKind
	Method string // setter or getter; empty for AccessInsert
	Type   string // declared value type
	Key    string // map key for AccessInsert
}

// PropertyAccess selects the access strategy for property on t: a setter,
// else a getter returning a list, else map insertion when t is a map. The
// first match wins.
func (r *Resolver) PropertyAccess(t *Type, property string) (Access, error) {
	byProp, ok := r.access[t.Name]
	if !ok {
		byProp = make(map[string]accessResult)
		r.access[t.Name] = byProp
	}

	if res, ok := byProp[property]; ok {
		return res.access, res.err
	}

	a, err := r.propertyAccess(t, property)
	byProp[property] = accessResult{access: a, err: err}

	r.cfg.logger.Trace("property access",
		slog.String("type", t.Name),
		slog.String("property", property),
		slog.String("access", a.Kind.String()),
		slog.Bool("ok", err == nil),
	)

	return a, err
}

func (r *Resolver) propertyAccess(t *Type, property string) (Access, error) {
	if m, ok := r.Setter(t, property); ok {
		return Access{Kind: AccessSet, Method: m.Name, Type: m.Params[0]}, nil
	}

	if m, ok := r.Getter(t, property); ok && r.KindOfName(m.Type) == KindList {
		return Access{Kind: AccessAppend, Method: m.Name, Type: ObjectType}, nil
	}

	if r.KindOf(t) == KindMap {
		return Access{Kind: AccessInsert, Type: ObjectType, Key: property}, nil
	}

	err := ErrNoAccess.With(
		slog.String("property", property),
		slog.String("type", t.Name),
	)

	if s := suggest(property, r.Properties(t)); len(s) > 0 {
		err = err.With(slog.String("suggest", strings.Join(s, ", ")))
	}

	return Access{}, err
}
