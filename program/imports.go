package program

import (
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/fxc/markup"
)

// implicitPackage is visible without an import.
const implicitPackage = "java.lang"

// Imports records the classes a program refers to by simple name. Two
// classes sharing a simple name cannot both be imported; the later one is
// referred to by its qualified name.
type Imports struct {
	byName map[string]markup.QName
}

// NewImports returns an empty registry.
func NewImports() *Imports {
	return &Imports{byName: make(map[string]markup.QName)}
}

// Add imports q if no other class with the same simple name is imported,
// and reports whether q may be referred to by its simple name.
func (i *Imports) Add(q markup.QName) bool {
	if !q.Qualified() || q.Package == implicitPackage {
		return true
	}

	if have, ok := i.byName[q.Name]; ok {
		return have == q
	}

	i.byName[q.Name] = q

	return true
}

// Imported reports whether q may be referred to by its simple name.
func (i *Imports) Imported(q markup.QName) bool {
	if !q.Qualified() || q.Package == implicitPackage {
		return true
	}

	return i.byName[q.Name] == q
}

// Name returns the name to use for q: its simple name when imported,
// otherwise its qualified name.
func (i *Imports) Name(q markup.QName) string {
	if i.Imported(q) {
		return q.Name
	}

	return q.String()
}

// All returns the explicitly imported classes sorted by qualified name.
func (i *Imports) All() []markup.QName {
	return slices.SortedFunc(maps.Values(i.byName), func(a, b markup.QName) int {
		return strings.Compare(a.String(), b.String())
	})
}

// Len returns the number of explicit imports.
func (i *Imports) Len() int { return len(i.byName) }
