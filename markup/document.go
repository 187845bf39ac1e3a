package markup

import (
	"iter"
)

// Document is a parsed FXML document. It is not modified after parsing.
type Document struct {
	Imports    []Import
	Root       Instance
	Controller QName // zero when the document declares no controller
}

// HasController reports whether the document declares a controller class.
func (d *Document) HasController() bool { return !d.Controller.IsZero() }

// All returns a pre-order iterator over every element of the document.
func (d *Document) All() iter.Seq[Element] {
	if d.Root == nil {
		return func(func(Element) bool) {}
	}

	return Walk(d.Root)
}

// IDs returns the fx:id values declared in the document in document order.
func (d *Document) IDs() []string {
	var ids []string

	for e := range d.All() {
		switch e := e.(type) {
		case *Instantiation:
			if e.ID != "" {
				ids = append(ids, e.ID)
			}
		case *Include:
			if e.ID != "" {
				ids = append(ids, e.ID)
			}
		}
	}

	return ids
}
