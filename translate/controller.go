package translate

import (
	"log/slog"

	"github.com/ardnew/fxc/meta"
	"github.com/ardnew/fxc/program"
)

// methodRef translates a reference to a controller event handler and
// schedules its bridge. Handlers taking one parameter receive the event.
func (t *translator) methodRef(method string) (program.Expr, error) {
	if t.controller == nil {
		return nil, ErrNoController.With(slog.String("method", method))
	}

	if !t.bridged[method] {
		b, err := t.handler(method)
		if err != nil {
			return nil, err
		}

		t.bridged[method] = true
		t.bridges = append(t.bridges, b)
	}

	name := program.BridgeName(method)

	if t.cfg.boundRefs {
		return &program.MethodRef{Target: program.Self(), Method: name}, nil
	}

	var args []program.Expr
	if t.bridgeArity(method) == 1 {
		args = []program.Expr{program.Ref(program.ParamEvent)}
	}

	return &program.Closure{
		Params: []string{program.ParamEvent},
		Body:   program.Invoke(program.Self(), name, args...),
	}, nil
}

// handler resolves the controller method named by a method reference,
// preferring the overload that takes the event.
func (t *translator) handler(method string) (bridge, error) {
	if m, ok := t.res.Method(t.controller, method, 1); ok {
		return bridge{method: method, paramType: t.valueTypeName(m.Params[0])}, nil
	}

	if _, ok := t.res.Method(t.controller, method, 0); ok {
		return bridge{method: method}, nil
	}

	return bridge{}, ErrUnknownMethod.With(
		slog.String("method", method),
		slog.String("controller", t.controller.Name),
	)
}

func (t *translator) bridgeArity(method string) int {
	for _, b := range t.bridges {
		if b.method == method && !b.paramType.IsZero() {
			return 1
		}
	}

	return 0
}

// controllerRef returns the expression yielding the loader's controller
// from within a bridge.
func (t *translator) controllerRef() program.Expr {
	var ref program.Expr = program.Invoke(program.Self(), program.MethodController)
	if t.cfg.typed {
		ref = &program.Cast{Type: t.controller.QName(), Value: ref}
	}

	return ref
}

// bridgeFunctions returns one function per referenced handler, in order of
// first reference, each forwarding to the controller method.
func (t *translator) bridgeFunctions() []*program.Function {
	fns := make([]*program.Function, 0, len(t.bridges))

	for _, b := range t.bridges {
		fn := &program.Function{Name: program.BridgeName(b.method)}

		var args []program.Expr

		if !b.paramType.IsZero() {
			fn.Params = []program.Param{{Name: program.ParamEvent, Type: b.paramType}}
			args = []program.Expr{program.Ref(program.ParamEvent)}
		}

		fn.Body = []program.Stmt{program.Do(program.Invoke(t.controllerRef(), b.method, args...))}
		fns = append(fns, fn)
	}

	return fns
}

// initializer injects published objects into the controller's injectable
// members in declaration order, then calls its initialize method when it
// has one.
func (t *translator) initializer() *program.Function {
	q := t.controller.QName()
	ctrl := program.Ref(program.ParamController)

	var body []program.Stmt

	for _, m := range t.res.InjectedMembers(t.controller) {
		switch {
		case m.Field:
			body = append(body, &program.FieldAssign{
				Target: ctrl,
				Field:  m.Name,
				Value:  t.typedLookup(m.Name, m.Type),
			})

		case m.Method(1):
			id := meta.PropertyName(meta.PrefixSet, m.Name)
			if id == "" {
				t.cfg.logger.Debug("skipping injected method",
					slog.String("controller", t.controller.Name),
					slog.String("method", m.Name),
				)

				continue
			}

			body = append(body, program.Do(program.Invoke(ctrl, m.Name, t.typedLookup(id, m.Params[0]))))
		}
	}

	if _, ok := t.res.Method(t.controller, program.MethodInitialize, 0); ok {
		body = append(body, program.Do(program.Invoke(ctrl, program.MethodInitialize)))
	}

	return &program.Function{
		Name:   program.FuncInitialize,
		Params: []program.Param{{Name: program.ParamController, Type: q}},
		Body:   body,
	}
}
