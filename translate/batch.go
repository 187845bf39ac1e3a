package translate

import (
	"context"
	"io/fs"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ardnew/fxc/meta"
	"github.com/ardnew/fxc/program"
)

// Result is the outcome of translating one document of a batch.
type Result struct {
	Path    string
	Program *program.Program
	Err     error
}

// Batch translates the documents at paths in fsys concurrently using at
// most workers goroutines, or one per CPU when workers is not positive.
// Results are returned in the order of paths. A failed document does not
// affect the others.
//
// The provider is shared by every translation and must be safe for
// concurrent lookups. Each document is translated with its own resolver.
func Batch(
	ctx context.Context,
	fsys fs.FS,
	paths []string,
	provider meta.Provider,
	workers int,
	opts ...Option,
) []Result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger := makeConfig(opts...).logger
	results := make([]Result, len(paths))

	var g errgroup.Group

	g.SetLimit(workers)

	start := time.Now()

	for i, p := range paths {
		g.Go(func() error {
			results[i] = translateFile(ctx, fsys, p, provider, opts)

			return nil
		})
	}

	_ = g.Wait()

	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	logger.DebugContext(ctx, "batch translated",
		slog.Int("documents", len(paths)),
		slog.Int("failed", failed),
		slog.Int("workers", workers),
		slog.Duration("elapsed", time.Since(start)),
	)

	return results
}

func translateFile(ctx context.Context, fsys fs.FS, p string, provider meta.Provider, opts []Option) Result {
	res := Result{Path: p}

	if err := ctx.Err(); err != nil {
		res.Err = err

		return res
	}

	f, err := fsys.Open(p)
	if err != nil {
		res.Err = ErrReadSource.Wrap(err).With(slog.String("path", p))

		return res
	}
	defer f.Close()

	res.Program, res.Err = Source(ctx, f, provider, append(opts[:len(opts):len(opts)], WithPath(p))...)

	return res
}
