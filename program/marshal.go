package program

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// ToMap converts the program to a native Go map structure. Statements are
// given in their listing form.
func (p *Program) ToMap() map[string]any {
	m := map[string]any{
		"name": p.Name,
		"root": p.Root.String(),
	}

	if p.Path != "" {
		m["path"] = p.Path
	}

	if !p.Controller.IsZero() {
		m["controller"] = p.Controller.String()
	}

	if p.Imports != nil && p.Imports.Len() > 0 {
		imports := make([]string, 0, p.Imports.Len())
		for _, q := range p.Imports.All() {
			imports = append(imports, q.String())
		}

		m["imports"] = imports
	}

	pr := newPrinter(p.Imports, Style{})

	if p.Build != nil {
		m["build"] = pr.functionMap(p.Build)
	}

	if p.Initializer != nil {
		m["initializer"] = pr.functionMap(p.Initializer)
	}

	if len(p.Bridges) > 0 {
		bridges := make([]map[string]any, len(p.Bridges))
		for i, fn := range p.Bridges {
			bridges[i] = pr.functionMap(fn)
		}

		m["bridges"] = bridges
	}

	return m
}

func (pr *printer) functionMap(fn *Function) map[string]any {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = pr.typ(p.Type) + " " + p.Name
	}

	body := make([]string, len(fn.Body))
	for i, s := range fn.Body {
		body[i] = pr.stmt(s)
	}

	return map[string]any{
		"name":   fn.Name,
		"params": params,
		"result": pr.typ(fn.Result),
		"body":   body,
	}
}

// MarshalJSON implements json.Marshaler for Program.
func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToMap())
}

// FormatJSON writes the program as JSON to the writer.
func (p *Program) FormatJSON(w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(p, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(p)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the program as YAML to the writer.
func (p *Program) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, p.ToMap(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}
