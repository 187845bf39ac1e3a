package cmd

import (
	"context"

	"github.com/ardnew/fxc/program"
	"github.com/ardnew/fxc/translate"
)

// Registry emits the program that registers a loader for every document.
type Registry struct {
	SourceFlags    `embed:""`
	TranslateFlags `embed:""`

	Color bool `default:"true" help:"Highlight the listing" negatable:""`
}

// Run executes the registry command. Documents that fail to translate are
// left out of the registry and reported.
func (r *Registry) Run(ctx context.Context) error {
	provider, err := providerFrom(ctx)
	if err != nil {
		return err
	}

	set, err := r.discover()
	if err != nil {
		return err
	}

	results, failed := r.batch(ctx, set, provider)

	programs := make([]*program.Program, 0, len(results))
	for _, res := range results {
		programs = append(programs, res.Program)
	}

	reg := translate.Registry(programs, r.Runtime)

	if err := program.Fprint(outputFrom(ctx), reg, listingStyle(r.Color)); err != nil {
		return ErrFormat.Wrap(err)
	}

	return failure(failed, len(results))
}
