package meta

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Accessor prefixes of bean-convention methods.
const (
	PrefixSet = "set"
	PrefixGet = "get"
)

// MethodName returns the accessor method for property, e.g.
// MethodName("set", "text") returns "setText".
func MethodName(prefix, property string) string {
	r, n := utf8.DecodeRuneInString(property)
	if n == 0 {
		return prefix
	}

	return prefix + string(unicode.ToUpper(r)) + property[n:]
}

// PropertyName returns the property accessed by method, or "" when method
// does not begin with prefix followed by a property name.
func PropertyName(prefix, method string) string {
	rest, ok := strings.CutPrefix(method, prefix)
	if !ok || rest == "" {
		return ""
	}

	r, n := utf8.DecodeRuneInString(rest)

	return string(unicode.ToLower(r)) + rest[n:]
}

// primitives maps primitive type names to their kinds.
var primitives = map[string]Kind{
	"boolean": KindBool,
	"byte":    KindInt,
	"short":   KindInt,
	"int":     KindInt,
	"long":    KindInt,
	"float":   KindFloat,
	"double":  KindFloat,
	"char":    KindChar,
}

// intBits maps integral type names, primitive and boxed, to their widths.
var intBits = map[string]int{
	"byte":              8,
	"short":             16,
	"int":               32,
	"long":              64,
	"java.lang.Byte":    8,
	"java.lang.Short":   16,
	"java.lang.Integer": 32,
	"java.lang.Long":    64,
}

// IsPrimitive reports whether name is a primitive type name.
func IsPrimitive(name string) bool {
	_, ok := primitives[name]

	return ok
}
