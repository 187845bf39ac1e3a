package program

import (
	"github.com/ardnew/fxc/markup"
	"github.com/ardnew/fxc/meta"
)

// Stmt is a statement. The set of statements is closed.
type Stmt interface {
	stmt()
}

// Expr is an expression. The set of expressions is closed.
type Expr interface {
	expr()
}

type (
	// VarDecl declares a local variable.
	VarDecl struct {
		Type  markup.QName
		Name  string
		Value Expr
	}

	// Return returns a value from the enclosing function.
	Return struct {
		Value Expr
	}

	// CallStmt evaluates a call for its side effect.
	CallStmt struct {
		Call *Call
	}

	// FieldAssign stores a value in a field of an object.
	FieldAssign struct {
		Target Expr
		Field  string
		Value  Expr
	}

	// Comment annotates the statements that follow it.
	Comment struct {
		Text string
	}
)

type (
	// VarRef names a local variable or parameter, or a static field of
	// Owner when Owner is non-zero.
	VarRef struct {
		Owner markup.QName
		Name  string
	}

	// Literal is a constant of a declared value type. Kind determines how
	// Value is written.
	Literal struct {
		Value string
		Type  markup.QName
		Kind  meta.Kind
	}

	// Cast converts Value to Type.
	Cast struct {
		Type  markup.QName
		Value Expr
	}

	// Call invokes Method on Target, or on the class Static when Target is
	// nil.
	Call struct {
		Target Expr
		Static markup.QName
		Method string
		Args   []Expr
	}

	// New invokes a constructor.
	New struct {
		Type markup.QName
		Args []Expr
	}

	// Closure is an anonymous function whose body is a single expression.
	Closure struct {
		Params []string
		Body   Expr
	}

	// MethodRef is Method bound to Target.
	MethodRef struct {
		Target Expr
		Method string
	}

	// Assign stores Value in a field of Target and yields Value.
	Assign struct {
		Target Expr
		Field  string
		Value  Expr
	}
)

func (*VarDecl) stmt()     {}
func (*Return) stmt()      {}
func (*CallStmt) stmt()    {}
func (*FieldAssign) stmt() {}
func (*Comment) stmt()     {}

func (*VarRef) expr()    {}
func (*Literal) expr()   {}
func (*Cast) expr()      {}
func (*Call) expr()      {}
func (*New) expr()       {}
func (*Closure) expr()   {}
func (*MethodRef) expr() {}
func (*Assign) expr()    {}

// Ref returns a reference to a local variable.
func Ref(name string) *VarRef { return &VarRef{Name: name} }

// String returns a string literal.
func String(s string) *Literal {
	return &Literal{Value: s, Type: StringType, Kind: meta.KindString}
}

// Invoke returns a call of method on target.
func Invoke(target Expr, method string, args ...Expr) *Call {
	return &Call{Target: target, Method: method, Args: args}
}

// InvokeStatic returns a call of a static method of class.
func InvokeStatic(class markup.QName, method string, args ...Expr) *Call {
	return &Call{Static: class, Method: method, Args: args}
}

// Do returns call as a statement.
func Do(call *Call) *CallStmt { return &CallStmt{Call: call} }
