package program

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/fxc/markup"
	"github.com/ardnew/fxc/meta"
)

// Style decorates the tokens of a listing. Nil fields leave tokens as is.
type Style struct {
	Keyword func(string) string
	Type    func(string) string
	Ident   func(string) string
	Literal func(string) string
	Comment func(string) string
}

func paint(f func(string) string, s string) string {
	if f == nil {
		return s
	}

	return f(s)
}

const listingIndent = "    "

// Fprint writes a listing of p to w.
func Fprint(w io.Writer, p *Program, style Style) error {
	pr := newPrinter(p.Imports, style)

	header := p.Name
	if p.Path != "" {
		header += " (" + p.Path + ")"
	}

	if header != "" {
		pr.line(0, paint(style.Comment, "// "+header))
	}

	for _, q := range pr.imports.All() {
		pr.line(0, paint(style.Keyword, "import")+" "+paint(style.Type, q.String())+";")
	}

	for _, fn := range p.Functions() {
		pr.sb.WriteByte('\n')
		pr.function(fn)
	}

	_, err := io.WriteString(w, pr.sb.String())

	return err
}

// ExprString returns the listing form of e without decoration.
func ExprString(e Expr) string {
	return newPrinter(nil, Style{}).expr(e)
}

// StmtString returns the listing form of s without decoration.
func StmtString(s Stmt) string {
	return newPrinter(nil, Style{}).stmt(s)
}

type printer struct {
	sb      strings.Builder
	style   Style
	imports *Imports
}

func newPrinter(imports *Imports, style Style) *printer {
	if imports == nil {
		imports = NewImports()
	}

	return &printer{style: style, imports: imports}
}

func (pr *printer) line(depth int, s string) {
	pr.sb.WriteString(strings.Repeat(listingIndent, depth))
	pr.sb.WriteString(s)
	pr.sb.WriteByte('\n')
}

func (pr *printer) kw(s string) string    { return paint(pr.style.Keyword, s) }
func (pr *printer) ident(s string) string { return paint(pr.style.Ident, s) }

func (pr *printer) typ(q markup.QName) string {
	if q.IsZero() {
		return pr.kw("void")
	}

	return paint(pr.style.Type, pr.imports.Name(q))
}

func (pr *printer) function(fn *Function) {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = pr.typ(p.Type) + " " + pr.ident(p.Name)
	}

	pr.line(0, pr.typ(fn.Result)+" "+pr.ident(fn.Name)+"("+strings.Join(params, ", ")+") {")

	for _, s := range fn.Body {
		pr.line(1, pr.stmt(s))
	}

	pr.line(0, "}")
}

func (pr *printer) stmt(s Stmt) string {
	switch s := s.(type) {
	case *VarDecl:
		return pr.typ(s.Type) + " " + pr.ident(s.Name) + " = " + pr.expr(s.Value) + ";"
	case *Return:
		return pr.kw("return") + " " + pr.expr(s.Value) + ";"
	case *CallStmt:
		return pr.expr(s.Call) + ";"
	case *FieldAssign:
		return pr.operand(s.Target) + "." + pr.ident(s.Field) + " = " + pr.expr(s.Value) + ";"
	case *Comment:
		return paint(pr.style.Comment, "// "+s.Text)
	default:
		return paint(pr.style.Comment, "/* unknown statement */")
	}
}

func (pr *printer) args(args []Expr) string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = pr.expr(a)
	}

	return "(" + strings.Join(out, ", ") + ")"
}

// operand renders e for use before a member selector.
func (pr *printer) operand(e Expr) string {
	switch e.(type) {
	case *Cast, *Closure, *Assign:
		return "(" + pr.expr(e) + ")"
	default:
		return pr.expr(e)
	}
}

func (pr *printer) expr(e Expr) string {
	switch e := e.(type) {
	case *VarRef:
		if !e.Owner.IsZero() {
			return pr.typ(e.Owner) + "." + pr.ident(e.Name)
		}

		if e.Name == SelfName {
			return pr.kw(e.Name)
		}

		return pr.ident(e.Name)

	case *Literal:
		return pr.literal(e)

	case *Cast:
		return "(" + pr.typ(e.Type) + ") " + pr.operand(e.Value)

	case *Call:
		var recv string

		switch {
		case e.Target != nil:
			recv = pr.operand(e.Target) + "."
		case !e.Static.IsZero():
			recv = pr.typ(e.Static) + "."
		}

		return recv + e.Method + pr.args(e.Args)

	case *New:
		return pr.kw("new") + " " + pr.typ(e.Type) + pr.args(e.Args)

	case *Closure:
		params := "(" + strings.Join(e.Params, ", ") + ")"
		if len(e.Params) == 1 {
			params = e.Params[0]
		}

		return params + " -> " + pr.expr(e.Body)

	case *MethodRef:
		return pr.operand(e.Target) + "::" + e.Method

	case *Assign:
		return pr.operand(e.Target) + "." + pr.ident(e.Field) + " = " + pr.expr(e.Value)

	default:
		return paint(pr.style.Comment, "/* unknown expression */")
	}
}

func (pr *printer) literal(l *Literal) string {
	var s string

	switch l.Kind {
	case meta.KindString:
		s = strconv.Quote(l.Value)
	case meta.KindChar:
		r, _ := utf8.DecodeRuneInString(l.Value)
		s = strconv.QuoteRune(r)
	case meta.KindBool, meta.KindInt, meta.KindFloat:
		s = l.Value
	case meta.KindEnum:
		return pr.typ(l.Type) + "." + paint(pr.style.Literal, l.Value)
	default:
		return pr.typ(l.Type) + ".valueOf(" + paint(pr.style.Literal, strconv.Quote(l.Value)) + ")"
	}

	return paint(pr.style.Literal, s)
}
