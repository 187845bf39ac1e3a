package cli

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/fxc/log"
)

// resolve is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// The file is a flat mapping from flag name to value. Flag names may be
// written with hyphens ("log-level") or underscores ("log_level"). Sequences
// supply repeated flags. Command-line flags override config file values.
//
//	log-level: debug
//	log_format: json
//	meta:
//	  - ~/.config/fxc/meta/controls.yaml
//	typed: true
//	workers: 4
//
// A file that is not a mapping is ignored with a warning.
func resolve(r io.Reader) (kong.Resolver, error) {
	var m map[string]any

	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if !errors.Is(err, io.EOF) {
			log.Warn("ignoring invalid configuration file", slog.Any("error", err))
		}

		return config{}, nil
	}

	cfg := make(config, len(m))
	for k, v := range m {
		cfg[k] = flagValue(v)
	}

	return cfg, nil
}

// config implements [kong.Resolver] for flat YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagValue converts a decoded YAML value into a form kong can scan.
// Kong requires numbers as strings.
func flagValue(v any) any {
	switch v := v.(type) {
	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case int:
		return strconv.Itoa(v)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = flagValue(e)
		}

		return out

	default:
		return v
	}
}
