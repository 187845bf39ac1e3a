package translate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/fxc/markup"
	"github.com/ardnew/fxc/meta"
	"github.com/ardnew/fxc/program"
)

// Names used for generated variables that are not derived from a class.
const (
	rootVar    = "root"
	loaderVar  = "loader"
	includeVar = "include"
	suffixCtrl = "Controller"
)

// instance translates an element that produces an object and returns the
// expression referring to that object.
func (t *translator) instance(ctx context.Context, e markup.Instance) (program.Expr, error) {
	var (
		ref program.Expr
		err error
	)

	switch e := e.(type) {
	case *markup.Root:
		ref, err = t.fxRoot(ctx, e)
	case *markup.Instantiation:
		ref, err = t.instantiation(ctx, e)
	case *markup.Reference:
		ref = t.lookup(e.Source)
	case *markup.Include:
		ref, err = t.include(e)
	default:
		err = unexpected(e)
	}

	if err != nil {
		return nil, wrap(err, e)
	}

	return ref, nil
}

// setRoot records the type of the outermost instance.
func (t *translator) setRoot(q markup.QName) {
	if t.root.IsZero() {
		t.root = q
	}
}

func (t *translator) fxRoot(ctx context.Context, e *markup.Root) (program.Expr, error) {
	typ, q, err := t.resolve(e.Type)
	if err != nil {
		return nil, err
	}

	t.setRoot(q)

	var value program.Expr = program.Invoke(program.Self(), program.MethodRoot)
	if t.cfg.typed {
		value = &program.Cast{Type: q, Value: value}
	}

	name := t.names.next(rootVar)
	t.emit(&program.VarDecl{Type: q, Name: name, Value: value})

	ref := program.Ref(name)

	return ref, t.properties(ctx, typ, ref, e.Children)
}

func (t *translator) instantiation(ctx context.Context, e *markup.Instantiation) (program.Expr, error) {
	if t.cfg.comments {
		t.emit(&program.Comment{Text: e.String()})
	}

	typ, q, err := t.resolve(e.Type)
	if err != nil {
		return nil, err
	}

	t.setRoot(q)

	c, err := t.construct(ctx, typ, q, e)
	if err != nil {
		return nil, err
	}

	name := t.names.next(c.q.Name)
	t.emit(&program.VarDecl{Type: c.q, Name: name, Value: c.value})

	ref := program.Ref(name)

	if e.ID != "" && t.cfg.publishFirst {
		if err := t.identify(c.typ, c.q, ref, e.ID); err != nil {
			return nil, err
		}
	}

	if err := t.properties(ctx, c.typ, ref, c.rest); err != nil {
		return nil, err
	}

	if e.ID != "" && !t.cfg.publishFirst {
		if err := t.identify(c.typ, c.q, ref, e.ID); err != nil {
			return nil, err
		}
	}

	return ref, nil
}

// construction is the object-creating expression of an instantiation.
type construction struct {
	value program.Expr
	typ   *meta.Type   // descriptor of the created object
	q     markup.QName // declared type of the created object
	rest  []markup.Element
}

// construct returns the expression creating the object of e along with the
// children left over for property assignment. Factory and valueOf methods
// that declare a described result type yield objects of that type.
func (t *translator) construct(
	ctx context.Context,
	typ *meta.Type,
	q markup.QName,
	e *markup.Instantiation,
) (construction, error) {
	fail := func(strategy string, attr slog.Attr) (construction, error) {
		return construction{}, ErrNoStrategy.With(
			slog.String("type", typ.Name),
			slog.String("strategy", strategy),
			attr,
		)
	}

	c := construction{typ: typ, q: q, rest: e.Children}

	switch s := e.Strategy.(type) {
	case markup.Constructor:
		if t.res.HasDefaultConstructor(typ) {
			c.value = &program.New{Type: q}

			return c, nil
		}

		args, rest, err := t.namedArguments(ctx, typ, e.Children)
		if err != nil {
			return construction{}, err
		}

		c.value, c.rest = &program.New{Type: q, Args: args}, rest

		return c, nil

	case markup.Factory:
		m, ok := t.res.Method(typ, s.Method, 0)
		if !ok {
			return fail("factory", slog.String("method", s.Method))
		}

		c.value = program.InvokeStatic(q, s.Method)
		t.result(&c, m)

		return c, nil

	case markup.FromValue:
		m, ok := t.res.Method(typ, methodValueOf, 1)
		if !ok {
			return fail("value", slog.String("value", s.Text))
		}

		c.value = program.InvokeStatic(q, methodValueOf, program.String(s.Text))
		t.result(&c, m)

		return c, nil

	case markup.Constant:
		if !t.res.Constant(typ, s.Name) {
			return fail("constant", slog.String("constant", s.Name))
		}

		c.value = &program.VarRef{Owner: q, Name: s.Name}

		return c, nil

	default:
		return construction{}, unexpected(s)
	}
}

// result retypes c as the described result type of the static method m.
func (t *translator) result(c *construction, m *meta.Member) {
	if m.Type == "" {
		return
	}

	if rt, ok := t.res.Lookup(m.Type); ok {
		c.typ, c.q = rt, t.typeName(rt.QName())
	}
}

const methodValueOf = "valueOf"

// namedArguments returns the arguments of the named-argument constructor of
// typ. Property children naming an argument supply its value and are
// removed from the returned children; defaults fill the rest.
func (t *translator) namedArguments(
	ctx context.Context,
	typ *meta.Type,
	children []markup.Element,
) ([]program.Expr, []markup.Element, error) {
	ctor, ok := t.res.NamedConstructor(typ)
	if !ok {
		return nil, nil, ErrNoStrategy.With(
			slog.String("type", typ.Name),
			slog.String("strategy", "constructor"),
		)
	}

	index := make(map[string]int, len(ctor.Params))
	for i, p := range ctor.Params {
		index[p.Name] = i
	}

	args := make([]program.Expr, len(ctor.Params))
	rest := make([]markup.Element, 0, len(children))

	for _, c := range children {
		p, ok := c.(markup.Property)
		if !ok {
			rest = append(rest, c)

			continue
		}

		i, ok := index[p.PropertyName()]
		if !ok {
			rest = append(rest, c)

			continue
		}

		param := ctor.Params[i]

		values, err := t.values(ctx, p, param.Type)
		if err != nil {
			return nil, nil, err
		}

		if len(values) != 1 || args[i] != nil {
			return nil, nil, ErrArgumentValue.With(
				slog.String("type", typ.Name),
				slog.String("argument", param.Name),
			)
		}

		args[i] = values[0]
	}

	var missing []string

	for i, p := range ctor.Params {
		if args[i] != nil {
			continue
		}

		if p.Default == "" {
			missing = append(missing, p.Name)

			continue
		}

		lit, err := t.literal(p.Default, p.Type)
		if err != nil {
			return nil, nil, err
		}

		args[i] = lit
	}

	if len(missing) > 0 {
		return nil, nil, ErrMissingArguments.With(
			slog.String("type", typ.Name),
			slog.String("arguments", strings.Join(missing, ", ")),
		)
	}

	t.cfg.logger.Trace("named construction",
		slog.String("type", typ.Name),
		slog.Int("arguments", len(args)),
	)

	return args, rest, nil
}

// identify publishes the object bound to ref under id and sets its id
// property when it has one.
func (t *translator) identify(typ *meta.Type, q markup.QName, ref program.Expr, id string) error {
	if err := t.publish(id, ref, q); err != nil {
		return err
	}

	if m, ok := t.res.Setter(typ, "id"); ok {
		t.emit(program.Do(program.Invoke(ref, m.Name, program.String(id))))
	}

	return nil
}

// include loads a nested document through the runtime context and binds its
// root and controller.
func (t *translator) include(e *markup.Include) (program.Expr, error) {
	base := e.ID
	if base == "" {
		base = includeVar
	}

	loader := t.names.next(loaderVar)
	t.emit(&program.VarDecl{
		Type:  t.runtimeType("Loader"),
		Name:  loader,
		Value: program.Invoke(program.Ref(program.ParamContext), program.MethodLoad, program.String(e.Source)),
	})

	root := t.names.next(base)
	t.emit(&program.VarDecl{
		Type:  program.ObjectType,
		Name:  root,
		Value: program.Invoke(program.Ref(loader), program.MethodRoot),
	})

	ctrl := t.names.next(base + suffixCtrl)
	t.emit(&program.VarDecl{
		Type:  program.ObjectType,
		Name:  ctrl,
		Value: program.Invoke(program.Ref(loader), program.MethodController),
	})

	ref := program.Ref(root)

	if e.ID != "" {
		if err := t.publish(e.ID, ref, program.ObjectType); err != nil {
			return nil, err
		}

		if err := t.publish(e.ID+suffixCtrl, program.Ref(ctrl), program.ObjectType); err != nil {
			return nil, err
		}
	}

	return ref, nil
}

// define translates the instantiations of an fx:define block for their
// publishing side effects.
func (t *translator) define(ctx context.Context, e *markup.Define) error {
	for _, c := range e.Children {
		if _, err := t.instance(ctx, c); err != nil {
			return err
		}
	}

	return nil
}
