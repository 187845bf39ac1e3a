package meta

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

// Coerce converts markup text to the canonical literal form of a value of
// the named type and reports the kind of that type. Numeric text is
// classified with the expression parser, so forms such as "0x1F", "1_000"
// and "-2.5e3" are accepted, as are NaN and the signed infinities. Integral
// text must fit the width of the target type. Text destined for string, object or
// collection types is returned unchanged.
func (r *Resolver) Coerce(text, typeName string) (string, Kind, error) {
	kind := r.KindOfName(typeName)

	invalid := func() (string, Kind, error) {
		return "", kind, ErrInvalidLiteral.With(
			slog.String("text", text),
			slog.String("type", typeName),
		)
	}

	switch kind {
	case KindBool:
		switch strings.ToLower(strings.TrimSpace(text)) {
		case "true":
			return "true", kind, nil
		case "false":
			return "false", kind, nil
		}

		return invalid()

	case KindInt:
		n, ok := number(text)
		if !ok {
			return invalid()
		}

		i, ok := n.(int)
		if !ok || !fitsInt(i, typeName) {
			return invalid()
		}

		return strconv.Itoa(i), kind, nil

	case KindFloat:
		if special, ok := specialFloat(text); ok {
			return special, kind, nil
		}

		n, ok := number(text)
		if !ok {
			return invalid()
		}

		var f float64

		switch v := n.(type) {
		case int:
			f = float64(v)
		case float64:
			f = v
		}

		return formatFloat(f), kind, nil

	case KindChar:
		if utf8.RuneCountInString(text) != 1 {
			return invalid()
		}

		return text, kind, nil

	case KindEnum:
		t, _ := r.Lookup(typeName)
		name := strings.ToUpper(strings.TrimSpace(text))

		if t == nil || !r.Constant(t, name) {
			return invalid()
		}

		return name, kind, nil

	default:
		return text, kind, nil
	}
}

// Canonical spellings of the non-finite floating-point values.
const (
	FloatNaN         = "NaN"
	FloatInfinity    = "Infinity"
	FloatNegInfinity = "-Infinity"
)

// specialFloat returns the canonical spelling of a non-finite value named
// by text, as accepted by Double.valueOf.
func specialFloat(text string) (string, bool) {
	switch strings.TrimSpace(text) {
	case "NaN", "+NaN", "-NaN":
		return FloatNaN, true
	case "Infinity", "+Infinity":
		return FloatInfinity, true
	case "-Infinity":
		return FloatNegInfinity, true
	}

	return "", false
}

// fitsInt reports whether i is representable by the integral type named
// typeName.
func fitsInt(i int, typeName string) bool {
	bits, ok := intBits[typeName]
	if !ok || bits >= 64 {
		return true
	}

	limit := 1 << (bits - 1)

	return i >= -limit && i < limit
}

// number parses text as a signed numeric literal, returning an int or a
// float64.
func number(text string) (any, bool) {
	tree, err := parser.Parse(strings.TrimSpace(text))
	if err != nil {
		return nil, false
	}

	return numeric(tree.Node)
}

func numeric(node ast.Node) (any, bool) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return n.Value, true

	case *ast.FloatNode:
		return n.Value, true

	case *ast.UnaryNode:
		v, ok := numeric(n.Node)
		if !ok {
			return nil, false
		}

		switch n.Operator {
		case "+":
			return v, true
		case "-":
			switch v := v.(type) {
			case int:
				return -v, true
			case float64:
				return -v, true
			}
		}
	}

	return nil, false
}

// formatFloat renders f so that it always reads as a floating-point literal.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return FloatNaN
	case math.IsInf(f, 1):
		return FloatInfinity
	case math.IsInf(f, -1):
		return FloatNegInfinity
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}

	return s + ".0"
}
