package meta

import (
	"log/slog"

	"github.com/ardnew/fxc/markup"
)

// Kind classifies how values of a type are written in markup and how
// collection-valued properties are populated.
type Kind string

const (
	KindObject Kind = "object"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindChar   Kind = "char"
	KindEnum   Kind = "enum"
	KindList   Kind = "list"
	KindMap    Kind = "map"
)

// Type describes one class. Name is fully qualified.
type Type struct {
	Name            string        `yaml:"name"`
	Kind            Kind          `yaml:"kind,omitempty"`
	Extends         []string      `yaml:"extends,omitempty"`
	DefaultProperty string        `yaml:"defaultProperty,omitempty"`
	Constructors    []Constructor `yaml:"constructors,omitempty"`
	Members         []Member      `yaml:"members,omitempty"`
	Constants       []string      `yaml:"constants,omitempty"`
}

// Constructor describes one public constructor.
type Constructor struct {
	Params []Param `yaml:"params,omitempty"`
}

// Param is a constructor parameter. Name is set only for parameters that may
// be supplied by property name; Default, when non-empty, is the markup text
// used when no property supplies the parameter.
type Param struct {
	Name    string `yaml:"name,omitempty"`
	Type    string `yaml:"type"`
	Default string `yaml:"default,omitempty"`
}

// Member is a field or method declared by a type.
type Member struct {
	Name   string   `yaml:"name"`
	Field  bool     `yaml:"field,omitempty"`
	Type   string   `yaml:"type,omitempty"` // field type or method result
	Params []string `yaml:"params,omitempty"`
	Inject bool     `yaml:"inject,omitempty"`
}

// QName returns the qualified name of t.
func (t *Type) QName() markup.QName { return markup.ParseQName(t.Name) }

// Named reports whether every parameter of c carries a name.
func (c Constructor) Named() bool {
	if len(c.Params) == 0 {
		return false
	}

	for _, p := range c.Params {
		if p.Name == "" {
			return false
		}
	}

	return true
}

// Method reports whether m is a method with the given arity.
func (m Member) Method(arity int) bool { return !m.Field && len(m.Params) == arity }

// validate reports the first structural problem in t.
func (t *Type) validate() error {
	if t.Name == "" {
		return ErrInvalidDescriptor.With(slog.String("reason", "missing name"))
	}

	switch t.Kind {
	case "", KindObject, KindString, KindBool, KindInt, KindFloat, KindChar,
		KindEnum, KindList, KindMap:
	default:
		return ErrInvalidDescriptor.With(
			slog.String("type", t.Name),
			slog.String("kind", string(t.Kind)),
		)
	}

	for _, m := range t.Members {
		if m.Name == "" {
			return ErrInvalidDescriptor.With(
				slog.String("type", t.Name),
				slog.String("reason", "unnamed member"),
			)
		}
	}

	for _, c := range t.Constructors {
		for _, p := range c.Params {
			if p.Type == "" {
				return ErrInvalidDescriptor.With(
					slog.String("type", t.Name),
					slog.String("reason", "untyped constructor parameter"),
				)
			}
		}
	}

	return nil
}
