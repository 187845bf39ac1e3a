package markup

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// QName is a possibly package-qualified class name.
type QName struct {
	Package string
	Name    string
}

// ParseQName splits a dotted name at its last separator.
func ParseQName(s string) QName {
	i := strings.LastIndexByte(s, '.')
	if i < 0 {
		return QName{Name: s}
	}

	return QName{Package: s[:i], Name: s[i+1:]}
}

// IsZero reports whether q is the zero QName.
func (q QName) IsZero() bool { return q == QName{} }

// Qualified reports whether q names a package.
func (q QName) Qualified() bool { return q.Package != "" }

// String returns the dotted form of q.
func (q QName) String() string {
	if q.Package == "" {
		return q.Name
	}

	return q.Package + "." + q.Name
}

// Import is a processing-instruction import of one class or of every class
// in a package.
type Import struct {
	Package string
	Name    string // empty for wildcard imports
}

// ParseImport parses the body of an import processing instruction, either
// "a.b.C" or "a.b.*".
func ParseImport(s string) (Import, error) {
	s = strings.TrimSpace(s)

	if pkg, ok := strings.CutSuffix(s, ".*"); ok {
		if !validPath(pkg) {
			return Import{}, ErrMalformedImport.With(slog.String("import", s))
		}

		return Import{Package: pkg}, nil
	}

	i := strings.LastIndexByte(s, '.')
	if i <= 0 || !validPath(s[:i]) || !validIdent(s[i+1:]) {
		return Import{}, ErrMalformedImport.With(slog.String("import", s))
	}

	return Import{Package: s[:i], Name: s[i+1:]}, nil
}

// Wildcard reports whether the import covers a whole package.
func (i Import) Wildcard() bool { return i.Name == "" }

// QName returns the imported class, or the zero QName for wildcard imports.
func (i Import) QName() QName {
	if i.Wildcard() {
		return QName{}
	}

	return QName{Package: i.Package, Name: i.Name}
}

// String returns the import as written in the processing instruction.
func (i Import) String() string {
	if i.Wildcard() {
		return i.Package + ".*"
	}

	return i.Package + "." + i.Name
}

func validPath(s string) bool {
	if s == "" {
		return false
	}

	for part := range strings.SplitSeq(s, ".") {
		if !validIdent(part) {
			return false
		}
	}

	return true
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}

// isUpper reports whether s begins with an uppercase letter.
func isUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)

	return unicode.IsUpper(r)
}

// staticName splits a dotted property name such as "GridPane.rowIndex" into
// its owner class and property. The final segment must not be capitalized.
func staticName(s string) (QName, string, bool) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 || isUpper(s[i+1:]) {
		return QName{}, "", false
	}

	return ParseQName(s[:i]), s[i+1:], true
}
