package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/fxc/log"
	"github.com/ardnew/fxc/meta"
	"github.com/ardnew/fxc/translate"
)

// SourceFlags selects the documents a command operates on.
type SourceFlags struct {
	Sources []string `arg:"" default:"."       help:"Markup documents or directories, or '-' for stdin" name:"source" optional:""`
	Root    string   `default:"."       help:"Directory that logical document paths are relative to" type:"path"`
	Include string   `default:"**.fxml" help:"Glob selecting documents inside directories"            short:"i"`
}

// stdin reports whether the only source is standard input.
func (f *SourceFlags) stdin() bool {
	return len(f.Sources) == 1 && f.Sources[0] == stdinSource
}

// discover resolves the selected documents.
func (f *SourceFlags) discover() (*sourceSet, error) {
	return discover(f.Root, f.Sources, f.Include)
}

// TranslateFlags configures translation.
type TranslateFlags struct {
	Typed        bool   `help:"Cast namespace lookups to their declared types"`
	BoundRefs    bool   `help:"Emit event handlers as bound method references" name:"bound-refs"`
	Comments     bool   `help:"Precede each object with the element it came from"`
	PublishFirst bool   `help:"Publish identified objects before assigning their properties" name:"publish-first"`
	Runtime      string `default:"${runtime}" help:"Package of the runtime loader types"`
	Workers      int    `default:"0"          help:"Concurrent translations (0 for one per CPU)" short:"j"`
}

func (f *TranslateFlags) options() []translate.Option {
	return []translate.Option{
		translate.WithLogger(log.Default()),
		translate.WithTypedLookups(f.Typed),
		translate.WithBoundMethodRefs(f.BoundRefs),
		translate.WithComments(f.Comments),
		translate.WithPublishFirst(f.PublishFirst),
		translate.WithRuntimePackage(f.Runtime),
	}
}

// batch translates every document in set. Failures are logged and counted.
func (f *TranslateFlags) batch(
	ctx context.Context,
	set *sourceSet,
	provider meta.Provider,
) (results []translate.Result, failed int) {
	results = translate.Batch(ctx, set.fsys(), set.paths, provider, f.Workers, f.options()...)

	for _, r := range results {
		if r.Err != nil {
			failed++

			log.ErrorContext(ctx, "cannot translate document",
				slog.String("path", r.Path),
				slog.Any("error", r.Err),
			)
		}
	}

	return results, failed
}

// failure returns the error reported when failed of total documents could
// not be translated, or nil.
func failure(failed, total int) error {
	if failed == 0 {
		return nil
	}

	return ErrTranslate.With(
		slog.Int("failed", failed),
		slog.Int("documents", total),
	)
}
