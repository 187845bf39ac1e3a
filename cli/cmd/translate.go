package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/fxc/log"
	"github.com/ardnew/fxc/meta"
	"github.com/ardnew/fxc/translate"
)

// Translate compiles markup documents into loader programs.
type Translate struct {
	SourceFlags    `embed:""`
	TranslateFlags `embed:""`

	Output string `default:"text" enum:"text,yaml,json" help:"Output format (${enum})"            short:"o"`
	Indent int    `default:"2"                         help:"Indentation of structured output"`
	Color  bool   `default:"true"                      help:"Highlight text listings"             negatable:""`
	Watch  bool   `help:"Translate again whenever a selected document changes" short:"w"`
}

// Run executes the translate command.
func (t *Translate) Run(ctx context.Context) error {
	provider, err := providerFrom(ctx)
	if err != nil {
		return err
	}

	w := outputFrom(ctx)

	if t.stdin() {
		return t.translateStdin(ctx, w, provider)
	}

	set, err := t.discover()
	if err != nil {
		return err
	}

	run := func(ctx context.Context) error {
		out := &printer{format: t.Output, indent: t.Indent, color: t.Color}

		results, failed := t.batch(ctx, set, provider)

		for _, r := range results {
			if r.Err != nil {
				continue
			}

			if err := out.print(ctx, w, r.Program); err != nil {
				return err
			}
		}

		return failure(failed, len(results))
	}

	if !t.Watch {
		return run(ctx)
	}

	if err := run(ctx); err != nil {
		log.ErrorContext(ctx, "initial translation failed", slog.Any("error", err))
	}

	dirs := set.dirs
	if len(dirs) == 0 {
		dirs = []string{set.root}
	}

	selects := func(p string) bool { return set.selects(p) }

	return watch(ctx, dirs, defaultDebounce, selects, func(ctx context.Context) error {
		// New documents may have appeared in watched directories.
		next, err := t.discover()
		if err != nil {
			return err
		}

		set = next

		return run(ctx)
	})
}

func (t *Translate) translateStdin(ctx context.Context, w io.Writer, provider meta.Provider) error {
	r, err := openSource(stdinSource)
	if err != nil {
		return err
	}
	defer r.Close()

	prog, err := translate.Source(ctx, r, provider, t.options()...)
	if err != nil {
		return err
	}

	out := &printer{format: t.Output, indent: t.Indent, color: t.Color}

	return out.print(ctx, w, prog)
}
