package cmd

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/goccy/go-yaml"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/fxc/markup"
	"github.com/ardnew/fxc/meta"
)

// Types lists the types known to the metadata provider.
type Types struct {
	Pattern  string `arg:""    help:"Fuzzy pattern matched against qualified type names" optional:""`
	Package  string `help:"Glob restricting the listed packages (e.g. 'javafx.scene.**')" short:"p"`
	Describe bool   `help:"Print the full descriptor of each listed type"                 short:"d"`
	Color    bool   `default:"true"                                                       help:"Highlight matched characters" negatable:""`
}

// Run executes the types command.
func (t *Types) Run(ctx context.Context) error {
	provider, err := providerFrom(ctx)
	if err != nil {
		return err
	}

	names, err := t.names(provider)
	if err != nil {
		return err
	}

	w := outputFrom(ctx)

	if t.Describe {
		return t.describe(ctx, w, provider, names)
	}

	for _, n := range names {
		if _, err := io.WriteString(w, n+"\n"); err != nil {
			return ErrFormat.Wrap(err)
		}
	}

	return nil
}

// names returns the listed names, ordered by match quality when a pattern
// is given and alphabetically otherwise.
func (t *Types) names(provider meta.Provider) ([]string, error) {
	var all []string
	if l, ok := provider.(meta.Lister); ok {
		all = l.Names()
	}

	if t.Package != "" {
		g, err := glob.Compile(t.Package, '.')
		if err != nil {
			return nil, ErrFilterPattern.With(slog.String("pattern", t.Package)).Wrap(err)
		}

		all = slices.DeleteFunc(all, func(n string) bool {
			return !g.Match(markup.ParseQName(n).Package)
		})
	}

	if t.Pattern == "" {
		return all, nil
	}

	matches := fuzzy.Find(t.Pattern, all)
	out := make([]string, 0, len(matches))

	for _, m := range matches {
		if t.Color && !t.Describe {
			out = append(out, highlight(m.Str, m.MatchedIndexes))
		} else {
			out = append(out, m.Str)
		}
	}

	return out, nil
}

// describe writes the descriptors of names as a YAML sequence.
func (t *Types) describe(ctx context.Context, w io.Writer, provider meta.Provider, names []string) error {
	types := make([]*meta.Type, 0, len(names))

	for _, n := range names {
		if typ, ok := provider.Lookup(markup.ParseQName(n)); ok {
			types = append(types, typ)
		}
	}

	data, err := yaml.MarshalContext(ctx, types)
	if err != nil {
		return ErrFormat.Wrap(err)
	}

	if _, err := w.Write(data); err != nil {
		return ErrFormat.Wrap(err)
	}

	return nil
}

// highlight renders the characters of s at the given byte indexes with
// matchStyle.
func highlight(s string, indexes []int) string {
	if len(indexes) == 0 {
		return s
	}

	var sb strings.Builder

	next := 0

	for i, r := range s {
		if next < len(indexes) && indexes[next] == i {
			sb.WriteString(matchStyle.Render(string(r)))

			next++

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
