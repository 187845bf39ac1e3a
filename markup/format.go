package markup

import (
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the document as FXML markup. Parsing the output yields a
// document equal to d.
//
// Property values that precede every child element are written as
// attributes; the rest are written as property elements so that element
// order is preserved.
func (d *Document) Format(_ context.Context, w io.Writer, indent int) error {
	f := formatter{indent: indent}

	f.line(0, `<?xml version="1.0" encoding="UTF-8"?>`)

	for _, imp := range d.Imports {
		f.line(0, "<?import "+imp.String()+"?>")
	}

	if len(d.Imports) > 0 {
		f.sb.WriteByte('\n')
	}

	extra := []attr{{"xmlns:" + prefixFX, NamespaceFX}}
	if d.HasController() {
		extra = append(extra, attr{prefixFX + ":controller", d.Controller.String()})
	}

	if d.Root != nil {
		f.element(d.Root, 0, extra)
	}

	_, err := io.WriteString(w, f.sb.String())

	return err
}

// FormatYAML writes a structural description of the document as YAML.
func (d *Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, d.ToMap(), opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

type attr struct{ name, value string }

type formatter struct {
	sb     strings.Builder
	indent int
}

func (f *formatter) line(depth int, s string) {
	f.sb.WriteString(strings.Repeat(" ", depth*f.indent))
	f.sb.WriteString(s)
	f.sb.WriteByte('\n')
}

func escape(s string) string {
	var sb strings.Builder

	_ = xml.EscapeText(&sb, []byte(s))

	return sb.String()
}

func startTag(name string, attrs []attr, empty bool) string {
	var sb strings.Builder

	sb.WriteByte('<')
	sb.WriteString(name)

	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.name)
		sb.WriteString(`="`)
		sb.WriteString(escape(a.value))
		sb.WriteByte('"')
	}

	if empty {
		sb.WriteString("/>")
	} else {
		sb.WriteByte('>')
	}

	return sb.String()
}

// container writes an element with child elements.
func (f *formatter) container(depth int, name string, attrs []attr, children []Element) {
	if len(children) == 0 {
		f.line(depth, startTag(name, attrs, true))

		return
	}

	f.line(depth, startTag(name, attrs, false))

	for _, c := range children {
		f.element(c, depth+1, nil)
	}

	f.line(depth, "</"+name+">")
}

// bean writes an object-producing element, hoisting leading property values
// into attributes.
func (f *formatter) bean(depth int, name string, attrs []attr, children []Element) {
	i := 0

	for ; i < len(children); i++ {
		switch c := children[i].(type) {
		case *PropertyValue:
			attrs = append(attrs, attr{c.Name, c.Value.String()})

			continue

		case *StaticProperty:
			if c.Value != nil {
				attrs = append(attrs, attr{c.PropertyName(), c.Value.String()})

				continue
			}
		}

		break
	}

	f.container(depth, name, attrs, children[i:])
}

func (f *formatter) element(e Element, depth int, extra []attr) {
	switch e := e.(type) {
	case *Root:
		f.bean(depth, prefixFX+":root",
			append(extra, attr{"type", e.Type.String()}), e.Children)

	case *Instantiation:
		attrs := extra
		if e.ID != "" {
			attrs = append(attrs, attr{prefixFX + ":id", e.ID})
		}

		switch s := e.Strategy.(type) {
		case Factory:
			attrs = append(attrs, attr{prefixFX + ":factory", s.Method})
		case FromValue:
			attrs = append(attrs, attr{prefixFX + ":value", s.Text})
		case Constant:
			attrs = append(attrs, attr{prefixFX + ":constant", s.Name})
		case Constructor, nil:
		}

		f.bean(depth, e.Type.String(), attrs, e.Children)

	case *Define:
		f.container(depth, prefixFX+":define", extra, Children(e))

	case *Reference:
		f.line(depth, startTag(prefixFX+":reference",
			append(extra, attr{"source", e.Source}), true))

	case *Include:
		attrs := append(extra, attr{"source", e.Source})
		if e.ID != "" {
			attrs = append(attrs, attr{prefixFX + ":id", e.ID})
		}

		f.line(depth, startTag(prefixFX+":include", attrs, true))

	case *PropertyElement:
		f.container(depth, e.Name, nil, Children(e))

	case *PropertyValue:
		f.line(depth, "<"+e.Name+">"+escape(e.Value.String())+"</"+e.Name+">")

	case *StaticProperty:
		name := e.PropertyName()
		if e.Value != nil {
			f.line(depth, "<"+name+">"+escape(e.Value.String())+"</"+name+">")

			return
		}

		f.container(depth, name, nil, Children(e))
	}
}
