package program

import "github.com/ardnew/fxc/markup"

// Well-known types.
var (
	StringType = markup.QName{Package: "java.lang", Name: "String"}
	ObjectType = markup.QName{Package: "java.lang", Name: "Object"}
)

// Names fixed by the runtime loader contract. Generated functions are
// methods of a loader whose receiver is Self; the loader exposes its
// namespace, root and controller.
const (
	SelfName      = "this"
	NamespaceName = "namespace"

	ParamContext    = "context"
	ParamController = "controller"
	ParamEvent      = "event"
	ParamRegistry   = "registry"

	MethodPublish    = "publish"
	MethodLookup     = "lookup"
	MethodLoad       = "load"
	MethodRoot       = "root"
	MethodController = "controller"
	MethodInitialize = "initialize"
	MethodRegister   = "register"
	MethodSetID      = "setId"

	FuncBuild      = "build"
	FuncInitialize = "initialize"
	FuncRegister   = "register"

	// BridgePrefix prefixes the name of a generated event-handler bridge.
	BridgePrefix = "hash_"
)

// Reserved returns the identifiers generated code must not declare.
func Reserved() []string {
	return []string{SelfName, NamespaceName, ParamContext, ParamController, ParamEvent}
}

// Self returns a reference to the loader under construction.
func Self() *VarRef { return Ref(SelfName) }

// Namespace returns a reference to the loader's id namespace.
func Namespace() *VarRef { return Ref(NamespaceName) }

// Publish returns the statement registering v under id.
func Publish(id string, v Expr) *CallStmt {
	return Do(Invoke(Namespace(), MethodPublish, String(id), v))
}

// Lookup returns the expression retrieving the object published under id.
func Lookup(id string) *Call {
	return Invoke(Namespace(), MethodLookup, String(id))
}

// PublishedID reports the id registered by s when s is a publish statement.
func PublishedID(s Stmt) (string, bool) {
	cs, ok := s.(*CallStmt)
	if !ok {
		return "", false
	}

	return namespaceCall(cs.Call, MethodPublish, 2)
}

// LookupID reports the id retrieved by e when e is a lookup, possibly cast.
func LookupID(e Expr) (string, bool) {
	if c, ok := e.(*Cast); ok {
		e = c.Value
	}

	call, ok := e.(*Call)
	if !ok {
		return "", false
	}

	return namespaceCall(call, MethodLookup, 1)
}

func namespaceCall(c *Call, method string, arity int) (string, bool) {
	ref, ok := c.Target.(*VarRef)
	if !ok || ref.Name != NamespaceName || c.Method != method || len(c.Args) != arity {
		return "", false
	}

	lit, ok := c.Args[0].(*Literal)
	if !ok {
		return "", false
	}

	return lit.Value, true
}

// BridgeName returns the name of the bridge forwarding to a controller
// method.
func BridgeName(method string) string { return BridgePrefix + method }
