package markup

import (
	"log/slog"
	"strings"
)

// Value is the parsed form of an attribute value or property text.
//
// The variants are [Literal], [IDRef], [Binding], [Location] and
// [MethodRef]. String returns the value as it would be written in markup.
type Value interface {
	String() string
	value()
}

// Literal is a plain string value.
type Literal struct{ Text string }

// IDRef references an object published under an fx:id.
type IDRef struct{ ID string }

// Binding is an expression binding such as "${model.name}".
type Binding struct{ Expr string }

// Location is a resource location relative to the document.
type Location struct{ Path string }

// MethodRef names a controller method used as an event handler.
type MethodRef struct{ Name string }

func (Literal) value()   {}
func (IDRef) value()     {}
func (Binding) value()   {}
func (Location) value()  {}
func (MethodRef) value() {}

const (
	prefixEscape   = `\`
	prefixID       = "$"
	prefixBinding  = "${"
	suffixBinding  = "}"
	prefixLocation = "@"
	prefixMethod   = "#"
)

func (v Literal) String() string {
	for _, p := range []string{prefixEscape, prefixID, prefixLocation, prefixMethod} {
		if strings.HasPrefix(v.Text, p) {
			return prefixEscape + v.Text
		}
	}

	return v.Text
}

func (v IDRef) String() string     { return prefixID + v.ID }
func (v Binding) String() string   { return prefixBinding + v.Expr + suffixBinding }
func (v Location) String() string  { return prefixLocation + v.Path }
func (v MethodRef) String() string { return prefixMethod + v.Name }

// ParseValue classifies a raw string value.
//
// A prefix character alone ("$", "@", "#") is a literal. An unterminated
// binding is an error.
func ParseValue(s string) (Value, error) {
	if len(s) < 2 {
		return Literal{Text: s}, nil
	}

	switch {
	case strings.HasPrefix(s, prefixEscape):
		return Literal{Text: s[1:]}, nil

	case strings.HasPrefix(s, prefixBinding):
		if !strings.HasSuffix(s, suffixBinding) || len(s) < len(prefixBinding)+len(suffixBinding) {
			return nil, ErrUnterminatedBinding.With(slog.String("value", s))
		}

		return Binding{Expr: s[len(prefixBinding) : len(s)-len(suffixBinding)]}, nil

	case strings.HasPrefix(s, prefixID):
		return IDRef{ID: s[1:]}, nil

	case strings.HasPrefix(s, prefixLocation):
		return Location{Path: s[1:]}, nil

	case strings.HasPrefix(s, prefixMethod):
		return MethodRef{Name: s[1:]}, nil

	default:
		return Literal{Text: s}, nil
	}
}
