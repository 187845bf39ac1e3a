package program

import (
	"github.com/ardnew/fxc/markup"
)

// Param is a function parameter.
type Param struct {
	Name string
	Type markup.QName
}

// Function is a named sequence of statements. A zero Result means the
// function returns nothing.
type Function struct {
	Name   string
	Params []Param
	Result markup.QName
	Body   []Stmt
}

// Program is the translation of one document.
type Program struct {
	Name       string       // loader name derived from the document path
	Path       string       // logical path of the document
	Root       markup.QName // type of the root instance
	Controller markup.QName // zero when the document declares no controller
	Imports    *Imports

	Build       *Function
	Initializer *Function // nil without a controller
	Bridges     []*Function
}

// Functions returns every function of p in listing order.
func (p *Program) Functions() []*Function {
	fns := make([]*Function, 0, 2+len(p.Bridges))

	if p.Build != nil {
		fns = append(fns, p.Build)
	}

	if p.Initializer != nil {
		fns = append(fns, p.Initializer)
	}

	return append(fns, p.Bridges...)
}

// Function returns the function of p with the given name.
func (p *Program) Function(name string) (*Function, bool) {
	for _, fn := range p.Functions() {
		if fn.Name == name {
			return fn, true
		}
	}

	return nil, false
}
