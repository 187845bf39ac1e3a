package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/fxc/program"
)

var (
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	typeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	literalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	matchStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
)

func render(s lipgloss.Style) func(string) string {
	return func(v string) string { return s.Render(v) }
}

// listingStyle returns the decoration of program listings.
func listingStyle(color bool) program.Style {
	if !color {
		return program.Style{}
	}

	return program.Style{
		Keyword: render(keywordStyle),
		Type:    render(typeStyle),
		Literal: render(literalStyle),
		Comment: render(commentStyle),
	}
}

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// printer writes programs in one output format.
type printer struct {
	format string
	indent int
	color  bool
	count  int
}

func (p *printer) print(ctx context.Context, w io.Writer, prog *program.Program) error {
	var err error

	switch p.format {
	case formatYAML:
		if p.count > 0 {
			_, err = io.WriteString(w, "---\n")
		}

		if err == nil {
			err = prog.FormatYAML(ctx, w, p.indent)
		}

	case formatJSON:
		err = prog.FormatJSON(w, p.indent)

	default:
		if p.count > 0 {
			_, err = io.WriteString(w, "\n")
		}

		if err == nil {
			err = program.Fprint(w, prog, listingStyle(p.color))
		}
	}

	p.count++

	if err != nil {
		return ErrFormat.With(
			slog.String("format", p.format),
			slog.String("program", prog.Name),
		).Wrap(err)
	}

	return nil
}
