package cli

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ardnew/mung"

	"github.com/ardnew/fxc/cli/cmd"
	"github.com/ardnew/fxc/log"
	"github.com/ardnew/fxc/meta"
	"github.com/ardnew/fxc/pkg"
)

// metaPathEnv names the environment variable listing additional descriptor
// files and directories, separated by [os.PathListSeparator].
var metaPathEnv = strings.ToUpper(pkg.Name) + "_META_PATH"

// baseMeta is the name of the user descriptor directory below the
// configuration directory.
const baseMeta = "meta"

// userMetaDir returns the user descriptor directory, creating it on first
// use so that it is ready to receive descriptor files.
func userMetaDir() string {
	dir := configPath(baseMeta)

	if err := os.MkdirAll(dir, defaultDirMode); err != nil {
		log.Debug("cannot create descriptor directory",
			slog.String("path", dir),
			slog.Any("error", err),
		)
	}

	return dir
}

// ErrMeta is returned when a descriptor file cannot be loaded.
var ErrMeta = pkg.NewError(pkg.KindResolution, "cannot load type descriptors")

// metaPath returns the descriptor search path. Entries named by flags come
// first, followed by those of the environment and then the user descriptor
// directory. Duplicate and missing entries are dropped.
func metaPath(flags []string) []string {
	exists := func(p string) bool {
		_, err := os.Stat(p)

		return p != "" && err == nil
	}

	joined := mung.Make(
		mung.WithSubjectItems(os.Getenv(metaPathEnv)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(flags...),
		mung.WithFilter(exists),
	).String()

	var path []string

	for _, p := range filepath.SplitList(joined) {
		if p != "" && !slices.Contains(path, p) {
			path = append(path, p)
		}
	}

	if dir := userMetaDir(); exists(dir) && !slices.Contains(path, dir) {
		path = append(path, dir)
	}

	return path
}

// descriptorFiles expands directories in path to the YAML files they
// contain, in lexical order.
func descriptorFiles(path []string) ([]string, error) {
	var files []string

	for _, p := range path {
		info, err := os.Stat(p)
		if err != nil {
			return nil, ErrMeta.With(slog.String("path", p)).Wrap(err)
		}

		if !info.IsDir() {
			files = append(files, p)

			continue
		}

		err = filepath.WalkDir(p, func(name string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}

			if ext := filepath.Ext(name); ext == ".yaml" || ext == ".yml" {
				files = append(files, name)
			}

			return nil
		})
		if err != nil {
			return nil, ErrMeta.With(slog.String("path", p)).Wrap(err)
		}
	}

	return files, nil
}

// provider returns a [cmd.ProviderFunc] that loads the descriptors found on
// the search path. User descriptors take precedence over the builtin ones.
func provider(flags []string) cmd.ProviderFunc {
	return func(ctx context.Context) (meta.Provider, error) {
		builtin, err := meta.Builtin()
		if err != nil {
			return nil, err
		}

		files, err := descriptorFiles(metaPath(flags))
		if err != nil {
			return nil, err
		}

		if len(files) == 0 {
			return builtin, nil
		}

		user, err := meta.LoadFiles(ctx, files...)
		if err != nil {
			return nil, err
		}

		log.DebugContext(ctx, "loaded type descriptors",
			slog.Any("files", files),
		)

		return append(user, builtin), nil
	}
}
