package pkg

import (
	"errors"
	"log/slog"
	"strings"
)

// Kind classifies an [Error] by the compilation phase that raised it.
type Kind int

const (
	KindUnknown        Kind = iota // error
	KindStructural                 // structural error
	KindResolution                 // resolution error
	KindPropertyAccess             // property access error
	KindInstantiation              // instantiation error
	KindUnsupported                // unsupported expression error
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural error"
	case KindResolution:
		return "resolution error"
	case KindPropertyAccess:
		return "property access error"
	case KindInstantiation:
		return "instantiation error"
	case KindUnsupported:
		return "unsupported expression error"
	default:
		return "error"
	}
}

// Error represents a classified error with optional structured logging
// attributes. It implements both error and slog.LogValuer interfaces.
//
// Package-level sentinels are created with [NewError] and specialized with
// [Error.With] and [Error.Wrap]. A specialized error still matches its
// sentinel with [errors.Is].
type Error struct {
	kind  Kind
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error of the given kind with a message.
func NewError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// WrapError wraps a standard error into an Error.
// If err already is (or wraps) an Error, that Error is returned.
func WrapError(err error) *Error {
	var ee *Error
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// IsKind reports whether err is an [Error] of the given kind.
func IsKind(err error, kind Kind) bool {
	var ee *Error
	if !errors.As(err, &ee) {
		return false
	}

	return ee.kind == kind
}

// Kind returns the classification of the error.
func (e *Error) Kind() Kind { return e.kind }

// Attrs returns a copy of the structured attributes attached to the error.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// Attr returns the value of the first attribute with the given key.
func (e *Error) Attr(key string) (slog.Value, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}

	return slog.Value{}, false
}

// Error implements the error interface.
//
// The message has the form "<msg> (<key>=<value>, ...): <err>", where each
// part is omitted when empty.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.msg)

	if len(e.attrs) > 0 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteByte('(')

		for i, a := range e.attrs {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(a.Key)
			sb.WriteByte('=')
			sb.WriteString(a.Value.String())
		}

		sb.WriteByte(')')
	}

	if e.err != nil {
		if sb.Len() > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(e.err.Error())
	}

	return sb.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error with the same kind and message,
// which holds for every error derived from the same sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}

	return t.kind == e.kind && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.kind != KindUnknown {
		attrs = append(attrs, slog.String("kind", e.kind.String()))
	}

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		kind:  e.kind,
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		kind:  e.kind,
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}
