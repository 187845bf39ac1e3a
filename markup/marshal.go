package markup

import (
	"github.com/goccy/go-yaml"
)

// ToMap returns an ordered structural description of the document suitable
// for YAML encoding.
func (d *Document) ToMap() yaml.MapSlice {
	m := yaml.MapSlice{}

	if len(d.Imports) > 0 {
		imports := make([]string, len(d.Imports))
		for i, imp := range d.Imports {
			imports[i] = imp.String()
		}

		m = append(m, yaml.MapItem{Key: "imports", Value: imports})
	}

	if d.HasController() {
		m = append(m, yaml.MapItem{Key: "controller", Value: d.Controller.String()})
	}

	if d.Root != nil {
		m = append(m, yaml.MapItem{Key: "root", Value: elementMap(d.Root)})
	}

	return m
}

func elementMap(e Element) yaml.MapSlice {
	m := yaml.MapSlice{}
	add := func(k string, v any) { m = append(m, yaml.MapItem{Key: k, Value: v}) }

	switch e := e.(type) {
	case *Root:
		add("root", e.Type.String())
	case *Define:
		add("define", len(e.Children))
	case *Instantiation:
		add("instantiate", e.Type.String())

		if e.ID != "" {
			add("id", e.ID)
		}

		switch s := e.Strategy.(type) {
		case Factory:
			add("factory", s.Method)
		case FromValue:
			add("value", s.Text)
		case Constant:
			add("constant", s.Name)
		case Constructor, nil:
		}
	case *Reference:
		add("reference", e.Source)
	case *Include:
		add("include", e.Source)

		if e.ID != "" {
			add("id", e.ID)
		}
	case *PropertyElement:
		add("property", e.Name)
	case *PropertyValue:
		add("property", e.Name)
		add(valueKind(e.Value), valueText(e.Value))
	case *StaticProperty:
		add("static", e.PropertyName())

		if e.Value != nil {
			add(valueKind(e.Value), valueText(e.Value))
		}
	}

	if children := Children(e); len(children) > 0 {
		list := make([]yaml.MapSlice, len(children))
		for i, c := range children {
			list[i] = elementMap(c)
		}

		add("children", list)
	}

	return m
}

func valueKind(v Value) string {
	switch v.(type) {
	case Literal:
		return "literal"
	case IDRef:
		return "ref"
	case Binding:
		return "binding"
	case Location:
		return "location"
	case MethodRef:
		return "method"
	default:
		return "value"
	}
}

func valueText(v Value) string {
	switch v := v.(type) {
	case Literal:
		return v.Text
	case IDRef:
		return v.ID
	case Binding:
		return v.Expr
	case Location:
		return v.Path
	case MethodRef:
		return v.Name
	default:
		return ""
	}
}
