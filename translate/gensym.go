package translate

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// gensym generates unique local variable names. The first name generated
// from a base is the base itself; later ones append an increasing number.
type gensym struct {
	counts map[string]int
	used   map[string]bool
}

func newGensym(reserved ...string) gensym {
	g := gensym{counts: make(map[string]int), used: make(map[string]bool)}
	for _, r := range reserved {
		g.used[r] = true
	}

	return g
}

func (g gensym) next(base string) string {
	base = lowerFirst(base)

	name := base
	for g.used[name] {
		g.counts[base]++
		name = base + strconv.Itoa(g.counts[base])
	}

	g.used[name] = true

	return name
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return "v"
	}

	return string(unicode.ToLower(r)) + s[n:]
}
