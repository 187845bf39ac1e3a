package markup

import (
	"iter"
	"strconv"
)

// Element is a node of a parsed document.
//
// The variants are [Root], [Define], [Instantiation], [Reference],
// [Include], [PropertyElement], [PropertyValue] and [StaticProperty].
// String returns a short single-line form of the element's start tag.
type Element interface {
	String() string
	element()
}

// Instance is an element that produces an object: [Root], [Instantiation],
// [Reference] or [Include].
type Instance interface {
	Element
	instance()
}

// Property is an element that assigns a property of its enclosing instance:
// [PropertyElement], [PropertyValue] or [StaticProperty].
type Property interface {
	Element
	PropertyName() string
}

// Root wraps an instance supplied by the caller of the generated loader
// (fx:root). Its children configure that instance.
type Root struct {
	Type     QName
	Children []Element
}

// Define groups instantiations that are created only to be published under
// their ids (fx:define).
type Define struct {
	Children []*Instantiation
}

// Instantiation creates an object of a class using one [Strategy].
type Instantiation struct {
	Type     QName
	Strategy Strategy
	ID       string
	Children []Element
}

// Reference yields the object published under Source (fx:reference).
type Reference struct {
	Source string
}

// Include loads a nested document by logical path (fx:include).
type Include struct {
	Source string
	ID     string
}

// PropertyElement assigns the instances it contains to a property.
type PropertyElement struct {
	Name     string
	Children []Instance
}

// PropertyValue assigns a string-valued expression to a property.
type PropertyValue struct {
	Name  string
	Value Value
}

// StaticProperty assigns a property owned by another class, such as
// GridPane.rowIndex. Exactly one of Value and Children is set.
type StaticProperty struct {
	Owner    QName
	Name     string
	Value    Value
	Children []Instance
}

func (*Root) element()            {}
func (*Define) element()          {}
func (*Instantiation) element()   {}
func (*Reference) element()       {}
func (*Include) element()         {}
func (*PropertyElement) element() {}
func (*PropertyValue) element()   {}
func (*StaticProperty) element()  {}

func (*Root) instance()          {}
func (*Instantiation) instance() {}
func (*Reference) instance()     {}
func (*Include) instance()       {}

// PropertyName implements [Property].
func (e *PropertyElement) PropertyName() string { return e.Name }

// PropertyName implements [Property].
func (e *PropertyValue) PropertyName() string { return e.Name }

// PropertyName implements [Property]. The name includes the owner class.
func (e *StaticProperty) PropertyName() string { return e.Owner.String() + "." + e.Name }

func (e *Root) String() string {
	return "<fx:root type=" + strconv.Quote(e.Type.String()) + ">"
}

func (*Define) String() string { return "<fx:define>" }

func (e *Instantiation) String() string {
	s := "<" + e.Type.String()
	if e.ID != "" {
		s += " fx:id=" + strconv.Quote(e.ID)
	}

	return s + ">"
}

func (e *Reference) String() string {
	return "<fx:reference source=" + strconv.Quote(e.Source) + ">"
}

func (e *Include) String() string {
	s := "<fx:include source=" + strconv.Quote(e.Source)
	if e.ID != "" {
		s += " fx:id=" + strconv.Quote(e.ID)
	}

	return s + ">"
}

func (e *PropertyElement) String() string { return "<" + e.Name + ">" }

func (e *PropertyValue) String() string {
	return e.Name + "=" + strconv.Quote(e.Value.String())
}

func (e *StaticProperty) String() string {
	if e.Value != nil {
		return e.PropertyName() + "=" + strconv.Quote(e.Value.String())
	}

	return "<" + e.PropertyName() + ">"
}

// Strategy selects how an [Instantiation] creates its object.
//
// The variants are [Constructor], [Factory], [FromValue] and [Constant].
type Strategy interface {
	strategy()
}

// Constructor creates the object with a constructor of its class.
type Constructor struct{}

// Factory calls a static factory method of the class (fx:factory).
type Factory struct{ Method string }

// FromValue converts a string with the class's valueOf method (fx:value).
type FromValue struct{ Text string }

// Constant reads a static constant of the class (fx:constant).
type Constant struct{ Name string }

func (Constructor) strategy() {}
func (Factory) strategy()     {}
func (FromValue) strategy()   {}
func (Constant) strategy()    {}

// Children returns the direct child elements of e.
func Children(e Element) []Element {
	switch e := e.(type) {
	case *Root:
		return e.Children
	case *Instantiation:
		return e.Children
	case *Define:
		out := make([]Element, len(e.Children))
		for i, c := range e.Children {
			out[i] = c
		}

		return out
	case *PropertyElement:
		return instances(e.Children)
	case *StaticProperty:
		return instances(e.Children)
	case *Reference, *Include, *PropertyValue:
		return nil
	default:
		return nil
	}
}

func instances(in []Instance) []Element {
	out := make([]Element, len(in))
	for i, c := range in {
		out[i] = c
	}

	return out
}

// Walk returns a pre-order iterator over e and its descendants.
func Walk(e Element) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		walk(e, yield)
	}
}

func walk(e Element, yield func(Element) bool) bool {
	if !yield(e) {
		return false
	}

	for _, c := range Children(e) {
		if !walk(c, yield) {
			return false
		}
	}

	return true
}
