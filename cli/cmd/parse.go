package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/fxc/log"
	"github.com/ardnew/fxc/markup"
)

// Parse reads markup documents and prints their element trees.
type Parse struct {
	SourceFlags `embed:""`

	Output string `default:"markup" enum:"markup,yaml" help:"Output format (${enum})" short:"o"`
	Indent int    `default:"2"                        help:"Indentation of output"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) error {
	w := outputFrom(ctx)

	if p.stdin() {
		r, err := openSource(stdinSource)
		if err != nil {
			return err
		}
		defer r.Close()

		return p.parse(ctx, w, r, stdinSource, 0)
	}

	set, err := p.discover()
	if err != nil {
		return err
	}

	fsys := set.fsys()
	printed, failed := 0, 0

	for _, name := range set.paths {
		f, err := fsys.Open(name)
		if err != nil {
			return ErrSource.With(slog.String("path", name)).Wrap(err)
		}

		err = p.parse(ctx, w, f, name, printed)
		f.Close()

		if err == nil {
			printed++
		} else {
			failed++

			log.ErrorContext(ctx, "cannot parse document",
				slog.String("path", name),
				slog.Any("error", err),
			)
		}
	}

	if failed > 0 {
		return ErrParse.With(
			slog.Int("failed", failed),
			slog.Int("documents", len(set.paths)),
		)
	}

	return nil
}

func (p *Parse) parse(ctx context.Context, w io.Writer, r io.Reader, name string, n int) error {
	doc, err := markup.Parse(ctx, r, markup.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	if p.Output == "yaml" {
		if n > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return ErrFormat.Wrap(err)
			}
		}

		if err := doc.FormatYAML(ctx, w, p.Indent); err != nil {
			return ErrFormat.With(slog.String("path", name)).Wrap(err)
		}

		return nil
	}

	if n > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return ErrFormat.Wrap(err)
		}
	}

	if err := doc.Format(ctx, w, p.Indent); err != nil {
		return ErrFormat.With(slog.String("path", name)).Wrap(err)
	}

	return nil
}
