package translate

import (
	"context"
	"log/slog"

	"github.com/ardnew/fxc/markup"
	"github.com/ardnew/fxc/meta"
	"github.com/ardnew/fxc/program"
)

const methodAdd, methodPut = "add", "put"

// properties applies the children of an instance to target, an object of
// type typ. Instances that are not wrapped in a property element are
// assigned to the default property of typ.
func (t *translator) properties(ctx context.Context, typ *meta.Type, target program.Expr, children []markup.Element) error {
	for _, c := range children {
		var err error

		switch c := c.(type) {
		case *markup.Define:
			err = t.define(ctx, c)

		case markup.Property:
			err = t.property(ctx, typ, target, c)

		case markup.Instance:
			dp, ok := t.res.DefaultProperty(typ)
			if !ok {
				err = ErrNoDefaultProperty.With(slog.String("type", typ.Name))

				break
			}

			err = t.property(ctx, typ, target, &markup.PropertyElement{
				Name:     dp,
				Children: []markup.Instance{c},
			})

		default:
			err = unexpected(c)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// property assigns p to target using the access strategy of its property.
func (t *translator) property(ctx context.Context, typ *meta.Type, target program.Expr, p markup.Property) error {
	if err := supported(p); err != nil {
		return err
	}

	acc, err := t.res.PropertyAccess(typ, p.PropertyName())
	if err != nil {
		return err
	}

	values, err := t.values(ctx, p, acc.Type)
	if err != nil {
		return err
	}

	for _, v := range values {
		switch acc.Kind {
		case meta.AccessSet:
			t.emit(program.Do(program.Invoke(target, acc.Method, v)))
		case meta.AccessAppend:
			t.emit(program.Do(program.Invoke(program.Invoke(target, acc.Method), methodAdd, v)))
		case meta.AccessInsert:
			t.emit(program.Do(program.Invoke(target, methodPut, program.String(acc.Key), v)))
		}
	}

	return nil
}

// supported rejects property forms that cannot be translated.
func supported(p markup.Property) error {
	switch p := p.(type) {
	case *markup.StaticProperty:
		return ErrStaticProperty.With(slog.String("property", p.PropertyName()))
	case *markup.PropertyValue:
		return supportedValue(p.Value)
	default:
		return nil
	}
}

func supportedValue(v markup.Value) error {
	switch v := v.(type) {
	case markup.Binding:
		return ErrBinding.With(slog.String("expression", v.String()))
	case markup.Location:
		return ErrLocation.With(slog.String("location", v.String()))
	default:
		return nil
	}
}

// values translates the value or instances of p, a property whose declared
// type is typeName.
func (t *translator) values(ctx context.Context, p markup.Property, typeName string) ([]program.Expr, error) {
	if err := supported(p); err != nil {
		return nil, err
	}

	switch p := p.(type) {
	case *markup.PropertyValue:
		v, err := t.value(p.Value, typeName)
		if err != nil {
			return nil, err
		}

		return []program.Expr{v}, nil

	case *markup.PropertyElement:
		out := make([]program.Expr, 0, len(p.Children))

		for _, c := range p.Children {
			v, err := t.instance(ctx, c)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil

	default:
		return nil, unexpected(p)
	}
}

// value translates an attribute value destined for a property of the named
// type.
func (t *translator) value(v markup.Value, typeName string) (program.Expr, error) {
	if err := supportedValue(v); err != nil {
		return nil, err
	}

	switch v := v.(type) {
	case markup.Literal:
		return t.literal(v.Text, typeName)
	case markup.IDRef:
		if typeName == meta.ObjectType {
			return t.lookup(v.ID), nil
		}

		return t.typedLookup(v.ID, typeName), nil
	case markup.MethodRef:
		return t.methodRef(v.Name)
	default:
		return nil, unexpected(v)
	}
}

// literal coerces text to a literal of the named type. Text destined for an
// untyped slot stays a string.
func (t *translator) literal(text, typeName string) (program.Expr, error) {
	if typeName == "" || typeName == meta.ObjectType {
		return program.String(text), nil
	}

	value, kind, err := t.res.Coerce(text, typeName)
	if err != nil {
		return nil, err
	}

	if kind == meta.KindString {
		return program.String(value), nil
	}

	return &program.Literal{Value: value, Type: t.valueTypeName(typeName), Kind: kind}, nil
}
