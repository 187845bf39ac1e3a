package translate

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/fxc/loader"
	"github.com/ardnew/fxc/markup"
	"github.com/ardnew/fxc/meta"
	"github.com/ardnew/fxc/pkg"
	"github.com/ardnew/fxc/program"
)

// Source parses one document from r and translates it.
func Source(ctx context.Context, r io.Reader, provider meta.Provider, opts ...Option) (*program.Program, error) {
	cfg := makeConfig(opts...)

	doc, err := markup.Parse(ctx, r, markup.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}

	return Document(ctx, doc, provider, opts...)
}

// Document translates a parsed document. Types are resolved against provider
// using the document's imports.
func Document(ctx context.Context, doc *markup.Document, provider meta.Provider, opts ...Option) (*program.Program, error) {
	t := newTranslator(doc, provider, makeConfig(opts...))

	prog, err := t.program(ctx)
	if err != nil {
		t.cfg.logger.DebugContext(ctx, "translation failed",
			slog.String("path", t.cfg.path),
			slog.Any("error", err),
		)

		return nil, err
	}

	t.cfg.logger.DebugContext(ctx, "translated",
		slog.String("path", t.cfg.path),
		slog.String("name", prog.Name),
		slog.Int("statements", len(prog.Build.Body)),
		slog.Int("ids", t.ids.Len()),
		slog.Int("bridges", len(prog.Bridges)),
	)

	return prog, nil
}

// translator holds the state of one translation run.
type translator struct {
	cfg     config
	doc     *markup.Document
	res     *meta.Resolver
	imports *program.Imports

	ids     *loader.Namespace[program.Expr]
	idTypes map[string]markup.QName
	names   gensym

	build   []program.Stmt
	bridges []bridge
	bridged map[string]bool

	root       markup.QName
	controller *meta.Type
}

// bridge is a pending event-handler bridge.
type bridge struct {
	method    string
	paramType markup.QName // zero for a handler without parameters
}

func newTranslator(doc *markup.Document, provider meta.Provider, cfg config) *translator {
	return &translator{
		cfg:     cfg,
		doc:     doc,
		res:     meta.NewResolver(provider, doc.Imports, meta.WithLogger(cfg.logger)),
		imports: program.NewImports(),
		ids:     loader.NewNamespace[program.Expr](),
		idTypes: make(map[string]markup.QName),
		names:   newGensym(program.Reserved()...),
		bridged: make(map[string]bool),
	}
}

func (t *translator) runtimeType(name string) markup.QName {
	q := markup.QName{Package: t.cfg.runtime, Name: name}
	t.imports.Add(q)

	return q
}

func (t *translator) emit(s program.Stmt) { t.build = append(t.build, s) }

func (t *translator) program(ctx context.Context) (*program.Program, error) {
	if t.doc.HasController() {
		ctrl, err := t.res.ResolveType(t.doc.Controller)
		if err != nil {
			return nil, err
		}

		t.controller = ctrl
	}

	rootExpr, err := t.instance(ctx, t.doc.Root)
	if err != nil {
		return nil, err
	}

	if t.root.IsZero() {
		t.root = program.ObjectType
	}

	t.emit(&program.Return{Value: rootExpr})

	prog := &program.Program{
		Name:    t.cfg.name,
		Path:    t.cfg.path,
		Root:    t.root,
		Imports: t.imports,
		Build: &program.Function{
			Name:   program.FuncBuild,
			Params: []program.Param{{Name: program.ParamContext, Type: t.runtimeType("Context")}},
			Result: t.root,
			Body:   t.build,
		},
	}

	if prog.Name == "" {
		prog.Name = LoaderName(t.cfg.path)
	}

	if t.controller != nil {
		prog.Controller = t.typeName(t.controller.QName())
		prog.Initializer = t.initializer()
		prog.Bridges = t.bridgeFunctions()
	}

	return prog, nil
}

// resolve finds the descriptor of a class named in the document and imports
// it.
func (t *translator) resolve(name markup.QName) (*meta.Type, markup.QName, error) {
	typ, err := t.res.ResolveType(name)
	if err != nil {
		return nil, markup.QName{}, err
	}

	return typ, t.typeName(typ.QName()), nil
}

// typeName imports q and returns it.
func (t *translator) typeName(q markup.QName) markup.QName {
	t.imports.Add(q)

	return q
}

// valueTypeName converts a descriptor type name to a QName, importing
// non-primitive types.
func (t *translator) valueTypeName(name string) markup.QName {
	q := markup.ParseQName(name)
	if meta.IsPrimitive(name) {
		return q
	}

	return t.typeName(q)
}

// lookup returns the namespace lookup of id. The id need not be published
// yet; lookups are resolved when the generated program runs.
func (t *translator) lookup(id string) program.Expr {
	q, ok := t.idTypes[id]
	if !t.cfg.typed || !ok {
		return program.Lookup(id)
	}

	return &program.Cast{Type: q, Value: program.Lookup(id)}
}

// typedLookup returns the lookup of id cast to typeName in typed mode.
func (t *translator) typedLookup(id, typeName string) program.Expr {
	if !t.cfg.typed || typeName == "" {
		return program.Lookup(id)
	}

	return &program.Cast{Type: t.valueTypeName(typeName), Value: program.Lookup(id)}
}

// publish registers ref under id, both in the translation namespace and in
// the generated program.
func (t *translator) publish(id string, ref program.Expr, typ markup.QName) error {
	if err := t.ids.Publish(id, ref); err != nil {
		return err
	}

	t.idTypes[id] = typ
	t.emit(program.Publish(id, ref))

	return nil
}

func unexpected(node any) error {
	return ErrUnexpectedNode.With(slog.Any("node", node))
}

// wrap annotates err with the element being translated unless it already
// names one.
func wrap(err error, e markup.Element) error {
	ee := pkg.WrapError(err)
	if _, ok := ee.Attr("element"); ok {
		return err
	}

	return ee.With(slog.String("element", e.String()))
}
