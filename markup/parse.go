package markup

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/fxc/log"
	"github.com/ardnew/fxc/pkg"
)

// NamespaceFX is the namespace URI of FXML control elements and attributes.
// Versioned forms such as NamespaceFX+"/1" are accepted as well.
const NamespaceFX = "http://javafx.com/fxml"

// DefaultMaxDepth is the default limit on element nesting.
const DefaultMaxDepth = 512

const prefixFX = "fx"

// Option configures the parser.
type Option func(config) config

type config struct {
	logger   log.Logger
	maxDepth int
}

// WithLogger sets the logger used for parser diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

// WithMaxDepth limits element nesting. A value of 0 disables the limit.
func WithMaxDepth(depth int) Option {
	return func(c config) config {
		c.maxDepth = depth

		return c
	}
}

type parser struct {
	dec   *xml.Decoder
	cfg   config
	ids   map[string]struct{}
	depth int
}

// ParseString parses a document from a string.
func ParseString(ctx context.Context, s string, opts ...Option) (*Document, error) {
	return Parse(ctx, strings.NewReader(s), opts...)
}

// Parse reads one document from r. Tokens are consumed as a stream; parsing
// stops after the root element is closed.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*Document, error) {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	p := &parser{
		dec: xml.NewDecoder(r),
		cfg: cfg,
		ids: make(map[string]struct{}),
	}

	doc, err := p.document(ctx)
	if err != nil {
		p.cfg.logger.DebugContext(ctx, "parse failed", slog.Any("error", err))

		return nil, err
	}

	p.cfg.logger.TraceContext(ctx, "parse complete",
		slog.Int("imports", len(doc.Imports)),
		slog.String("root", doc.Root.String()),
		slog.String("controller", doc.Controller.String()),
		slog.Int("ids", len(p.ids)),
	)

	return doc, nil
}

// fail attaches the decoder's current position to err.
func (p *parser) fail(err error) error {
	line, column := p.dec.InputPos()

	return pkg.WrapError(err).With(slog.Int("line", line), slog.Int("column", column))
}

func (p *parser) token() (xml.Token, error) {
	tok, err := p.dec.Token()
	if err == nil {
		return tok, nil
	}

	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}

	return nil, p.fail(ErrMalformedXML.Wrap(err))
}

func (p *parser) document(ctx context.Context) (*Document, error) {
	var doc Document

	for {
		tok, err := p.token()
		if errors.Is(err, io.EOF) {
			return nil, p.fail(ErrNoRoot)
		}

		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.ProcInst:
			if t.Target != "import" {
				continue
			}

			imp, err := ParseImport(string(t.Inst))
			if err != nil {
				return nil, p.fail(err)
			}

			p.cfg.logger.TraceContext(ctx, "import", slog.String("import", imp.String()))

			doc.Imports = append(doc.Imports, imp)

		case xml.StartElement:
			attrs := splitAttrs(t)

			el, err := p.element(ctx, t, "")
			if err != nil {
				return nil, err
			}

			inst, ok := el.(Instance)
			if !ok {
				return nil, p.fail(ErrIllegalRoot.With(slog.String("element", el.String())))
			}

			doc.Root = inst

			if c, ok := attrs.fx["controller"]; ok {
				doc.Controller = ParseQName(strings.TrimSpace(c))
			}

			return &doc, nil
		}
	}
}

// attrs holds the attributes of a start element split by namespace.
type attrs struct {
	fx    map[string]string
	plain []xml.Attr
}

// splitAttrs separates fx-namespaced attributes from plain ones. Namespace
// declarations and attributes of foreign namespaces are dropped.
func splitAttrs(start xml.StartElement) attrs {
	a := attrs{fx: make(map[string]string)}

	for _, attr := range start.Attr {
		switch {
		case attr.Name.Space == "xmlns",
			attr.Name.Space == "" && attr.Name.Local == "xmlns":
		case isFX(attr.Name.Space):
			a.fx[attr.Name.Local] = attr.Value
		case attr.Name.Space == "":
			a.plain = append(a.plain, attr)
		}
	}

	return a
}

// take removes the named plain attribute and returns its value.
func (a *attrs) take(name string) (string, bool) {
	for i, attr := range a.plain {
		if attr.Name.Local == name {
			a.plain = append(a.plain[:i:i], a.plain[i+1:]...)

			return attr.Value, true
		}
	}

	return "", false
}

func isFX(space string) bool {
	return space == prefixFX || space == NamespaceFX ||
		strings.HasPrefix(space, NamespaceFX+"/")
}

// defaultNamespace returns the default namespace in scope for start.
func defaultNamespace(start xml.StartElement, inherited string) string {
	for _, attr := range start.Attr {
		if attr.Name.Space == "" && attr.Name.Local == "xmlns" {
			return attr.Value
		}
	}

	return inherited
}

func (p *parser) element(
	ctx context.Context,
	start xml.StartElement,
	ns string,
) (Element, error) {
	p.depth++
	defer func() { p.depth-- }()

	if p.cfg.maxDepth > 0 && p.depth > p.cfg.maxDepth {
		return nil, p.fail(ErrMaxDepthExceeded.With(slog.Int("max", p.cfg.maxDepth)))
	}

	ns = defaultNamespace(start, ns)
	name := start.Name

	switch {
	case isFX(name.Space):
		return p.control(ctx, start, ns)

	case name.Space != "" && name.Space != ns:
		return nil, p.fail(ErrUnknownElement.With(
			slog.String("element", name.Local),
			slog.String("namespace", name.Space),
		))
	}

	if owner, prop, ok := staticName(name.Local); ok {
		return p.property(ctx, start, ns, owner, prop)
	}

	if isUpper(name.Local) {
		return p.instantiation(ctx, start, ns)
	}

	return p.property(ctx, start, ns, QName{}, name.Local)
}

// content consumes tokens up to the end of the current element and returns
// its child elements and character data.
func (p *parser) content(ctx context.Context, start xml.StartElement, ns string) ([]Element, string, error) {
	var (
		children []Element
		text     strings.Builder
	)

	for {
		tok, err := p.token()
		if errors.Is(err, io.EOF) {
			return nil, "", p.fail(ErrMalformedXML.Wrap(io.ErrUnexpectedEOF))
		}

		if err != nil {
			return nil, "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el, err := p.element(ctx, t, ns)
			if err != nil {
				return nil, "", err
			}

			children = append(children, el)

		case xml.CharData:
			text.Write(t)

		case xml.EndElement:
			if len(children) > 0 && strings.TrimSpace(text.String()) != "" {
				return nil, "", p.fail(ErrTextAndChildren.With(slog.String("element", start.Name.Local)))
			}

			return children, text.String(), nil
		}
	}
}

// claim registers a document-unique fx:id.
func (p *parser) claim(id string) error {
	if _, ok := p.ids[id]; ok {
		return p.fail(ErrDuplicateID.With(slog.String("id", id)))
	}

	p.ids[id] = struct{}{}

	return nil
}

func (p *parser) attrProperties(plain []xml.Attr) ([]Element, error) {
	props := make([]Element, 0, len(plain))

	for _, attr := range plain {
		v, err := ParseValue(attr.Value)
		if err != nil {
			return nil, p.fail(err)
		}

		if owner, prop, ok := staticName(attr.Name.Local); ok {
			props = append(props, &StaticProperty{Owner: owner, Name: prop, Value: v})

			continue
		}

		props = append(props, &PropertyValue{Name: attr.Name.Local, Value: v})
	}

	return props, nil
}

// beanChildren checks the children of an object-producing element.
func (p *parser) beanChildren(parent string, children []Element) error {
	for _, c := range children {
		if _, ok := c.(*Root); ok {
			return p.fail(ErrUnexpectedElement.With(
				slog.String("element", c.String()),
				slog.String("parent", parent),
			))
		}
	}

	return nil
}

// instanceChildren narrows the children of a property element.
func (p *parser) instanceChildren(parent string, children []Element) ([]Instance, error) {
	out := make([]Instance, 0, len(children))

	for _, c := range children {
		inst, ok := c.(Instance)
		if _, root := c.(*Root); !ok || root {
			return nil, p.fail(ErrUnexpectedElement.With(
				slog.String("element", c.String()),
				slog.String("parent", parent),
			))
		}

		out = append(out, inst)
	}

	return out, nil
}

func (p *parser) instantiation(
	ctx context.Context,
	start xml.StartElement,
	ns string,
) (Element, error) {
	a := splitAttrs(start)

	inst := &Instantiation{
		Type:     ParseQName(start.Name.Local),
		Strategy: strategyOf(a.fx),
		ID:       a.fx["id"],
	}

	if inst.ID != "" {
		if err := p.claim(inst.ID); err != nil {
			return nil, err
		}
	}

	props, err := p.attrProperties(a.plain)
	if err != nil {
		return nil, err
	}

	children, _, err := p.content(ctx, start, ns)
	if err != nil {
		return nil, err
	}

	if err := p.beanChildren(inst.String(), children); err != nil {
		return nil, err
	}

	inst.Children = append(props, children...)

	return inst, nil
}

// strategyOf selects the instantiation strategy from fx attributes.
func strategyOf(fx map[string]string) Strategy {
	if m, ok := fx["factory"]; ok {
		return Factory{Method: m}
	}

	if v, ok := fx["value"]; ok {
		return FromValue{Text: v}
	}

	if c, ok := fx["constant"]; ok {
		return Constant{Name: c}
	}

	return Constructor{}
}

// property parses a property element. A non-zero owner makes it static.
func (p *parser) property(
	ctx context.Context,
	start xml.StartElement,
	ns string,
	owner QName,
	name string,
) (Element, error) {
	children, text, err := p.content(ctx, start, ns)
	if err != nil {
		return nil, err
	}

	var value Value

	if t := strings.TrimSpace(text); t != "" {
		value, err = ParseValue(t)
		if err != nil {
			return nil, p.fail(err)
		}
	}

	if !owner.IsZero() {
		prop := &StaticProperty{Owner: owner, Name: name, Value: value}
		if value == nil {
			prop.Children, err = p.instanceChildren(prop.String(), children)
			if err != nil {
				return nil, err
			}
		}

		return prop, nil
	}

	if value != nil {
		return &PropertyValue{Name: name, Value: value}, nil
	}

	insts, err := p.instanceChildren("<"+name+">", children)
	if err != nil {
		return nil, err
	}

	return &PropertyElement{Name: name, Children: insts}, nil
}

func (p *parser) control(
	ctx context.Context,
	start xml.StartElement,
	ns string,
) (Element, error) {
	a := splitAttrs(start)
	tag := prefixFX + ":" + start.Name.Local

	require := func(name string) (string, error) {
		v, ok := a.take(name)
		if !ok {
			return "", p.fail(ErrMissingAttribute.With(
				slog.String("element", tag),
				slog.String("attribute", name),
			))
		}

		return v, nil
	}

	leaf := func() error {
		children, _, err := p.content(ctx, start, ns)
		if err != nil {
			return err
		}

		if len(children) > 0 {
			return p.fail(ErrUnexpectedElement.With(
				slog.String("element", children[0].String()),
				slog.String("parent", tag),
			))
		}

		return nil
	}

	switch start.Name.Local {
	case "root":
		typ, err := require("type")
		if err != nil {
			return nil, err
		}

		root := &Root{Type: ParseQName(strings.TrimSpace(typ))}

		props, err := p.attrProperties(a.plain)
		if err != nil {
			return nil, err
		}

		children, _, err := p.content(ctx, start, ns)
		if err != nil {
			return nil, err
		}

		if err := p.beanChildren(tag, children); err != nil {
			return nil, err
		}

		root.Children = append(props, children...)

		return root, nil

	case "define":
		children, _, err := p.content(ctx, start, ns)
		if err != nil {
			return nil, err
		}

		def := &Define{Children: make([]*Instantiation, 0, len(children))}

		for _, c := range children {
			inst, ok := c.(*Instantiation)
			if !ok {
				return nil, p.fail(ErrUnexpectedElement.With(
					slog.String("element", c.String()),
					slog.String("parent", tag),
				))
			}

			def.Children = append(def.Children, inst)
		}

		return def, nil

	case "include":
		src, err := require("source")
		if err != nil {
			return nil, err
		}

		inc := &Include{Source: src, ID: a.fx["id"]}
		if inc.ID != "" {
			if err := p.claim(inc.ID); err != nil {
				return nil, err
			}
		}

		return inc, leaf()

	case "reference":
		src, err := require("source")
		if err != nil {
			return nil, err
		}

		return &Reference{Source: src}, leaf()

	default:
		return nil, p.fail(ErrUnknownElement.With(slog.String("element", tag)))
	}
}
