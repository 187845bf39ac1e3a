package cmd

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/gobwas/glob"

	"github.com/ardnew/fxc/meta"
)

// contextKey stores a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	providerKey struct{}
	outputKey   struct{}
)

// ProviderFunc returns the type metadata provider used by commands. It is
// called at most once per command.
type ProviderFunc func(ctx context.Context) (meta.Provider, error)

// WithProvider returns a new context.Context carrying the function that
// builds the type metadata provider.
func WithProvider(ctx context.Context, fn ProviderFunc) context.Context {
	return context.WithValue(ctx, providerKey{}, fn)
}

// providerFrom builds the provider stored in ctx by WithProvider, falling
// back to the builtin descriptors.
func providerFrom(ctx context.Context) (meta.Provider, error) {
	if fn, ok := ctx.Value(providerKey{}).(ProviderFunc); ok && fn != nil {
		return fn(ctx)
	}

	return meta.Builtin()
}

// WithOutput returns a new context.Context directing command output to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// outputFrom returns the writer stored in ctx by WithOutput, the kong
// context's stdout, or os.Stdout.
func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// sourceSet is the set of documents selected by command-line sources,
// identified by their logical paths relative to a root directory.
type sourceSet struct {
	root  string
	paths []string // logical, slash-separated
	dirs  []string // directories named on the command line
	match glob.Glob
}

// fsys returns the file system rooted at the source root.
func (s *sourceSet) fsys() fs.FS { return os.DirFS(s.root) }

// selects reports whether the file at path belongs to the set, either as a
// selected document or as a new document matching the include pattern
// inside a selected directory.
func (s *sourceSet) selects(path string) bool {
	logical, err := logicalPath(s.root, path)
	if err != nil {
		return false
	}

	if slices.Contains(s.paths, logical) {
		return true
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	for _, dir := range s.dirs {
		rel, err := filepath.Rel(dir, abs)
		if err == nil && filepath.IsLocal(rel) {
			return s.match.Match(logical)
		}
	}

	return false
}

// discover resolves sources to documents below root. Directories are walked
// recursively and contribute every file whose logical path matches include.
// Files named explicitly are always selected. Duplicates, including those
// reached through symlinks, are dropped.
func discover(root string, sources []string, include string) (*sourceSet, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, ErrSource.With(slog.String("root", root)).Wrap(err)
	}

	match, err := glob.Compile(include, '/')
	if err != nil {
		return nil, ErrIncludePattern.With(slog.String("pattern", include)).Wrap(err)
	}

	set := &sourceSet{root: absRoot, match: match}
	seen := make(map[fileKey]struct{})

	add := func(path string) error {
		logical, err := logicalPath(absRoot, path)
		if err != nil {
			return err
		}

		if unique(path, seen) {
			set.paths = append(set.paths, logical)
		}

		return nil
	}

	for _, src := range sources {
		info, err := os.Stat(src)
		if err != nil {
			return nil, ErrSource.With(slog.String("source", src)).Wrap(err)
		}

		if !info.IsDir() {
			if err := add(src); err != nil {
				return nil, err
			}

			continue
		}

		dir, err := filepath.Abs(src)
		if err != nil {
			return nil, ErrSource.With(slog.String("source", src)).Wrap(err)
		}

		set.dirs = append(set.dirs, dir)

		err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}

			logical, err := logicalPath(absRoot, path)
			if err != nil {
				return err
			}

			if !match.Match(logical) {
				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	if len(set.paths) == 0 {
		return nil, ErrNoSources.With(slog.Any("sources", sources))
	}

	slices.Sort(set.paths)

	return set, nil
}

// logicalPath returns path relative to root in slash-separated form.
func logicalPath(root, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ErrSource.With(slog.String("source", path)).Wrap(err)
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || !filepath.IsLocal(rel) {
		return "", ErrOutsideRoot.With(
			slog.String("source", path),
			slog.String("root", root),
		)
	}

	return filepath.ToSlash(rel), nil
}

// unique reports whether the file at path has not been seen before and
// records it. It resolves symlinks and uses device/inode to detect
// duplicates. Files whose identity cannot be determined are always unique.
func unique(path string, seen map[fileKey]struct{}) bool {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return true
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return true
	}

	key, ok := makeFileKey(info)
	if !ok {
		return true
	}

	if _, exists := seen[key]; exists {
		return false
	}

	seen[key] = struct{}{}

	return true
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// openSource opens a single source document, or stdin for "-".
func openSource(src string) (io.ReadCloser, error) {
	if src == stdinSource {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, ErrSource.With(slog.String("source", src)).Wrap(err)
	}

	return f, nil
}
