package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/fxc/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config.yaml"

// defaultDirMode is the permission mode of created directories.
var defaultDirMode os.FileMode = 0o700

// basePrefix names the per-user configuration and cache directories after
// the executable, so that renamed builds keep separate settings. A dlv
// debug binary maps to the program name and leading dots are dropped.
var basePrefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		return executablePrefix(id)
	},
)

var (
	debugBin   = regexp.MustCompile(`^__debug_bin\d+$`)
	leadingDot = regexp.MustCompile(`^\.+`)
)

func executablePrefix(exe string) string {
	id := filepath.Base(exe)
	id = strings.TrimSuffix(id, filepath.Ext(id))

	if debugBin.MatchString(id) {
		return pkg.Name
	}

	if id = leadingDot.ReplaceAllString(id, ""); id == "" {
		return pkg.Name
	}

	return id
}

// userDir returns the program's subdirectory of the directory reported by
// base. When base fails, fallback below the home directory is used, and
// the working directory when there is no home either.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, basePrefix())
}

// configDir holds the configuration file and user type descriptors.
var configDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// cacheDir holds transient output such as profiles.
var cacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// configPath joins elem to the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
