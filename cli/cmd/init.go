package cmd

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/fxc/log"
	"github.com/ardnew/fxc/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalContext(ctx, i.buildConfig(ctx), yaml.Indent(defaultConfigIndent))
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	err = os.WriteFile(confPath, data, 0o644)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// buildConfig collects the current value of every visible flag, keyed by
// flag name in declaration order. Unset and empty values are omitted.
func (i *Init) buildConfig(ctx context.Context) yaml.MapSlice {
	ktx := kongContextFrom(ctx)

	var entries yaml.MapSlice

	prefixIgnore := []string{"help", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if slices.ContainsFunc(entries, func(item yaml.MapItem) bool {
			return item.Key == flag.Name
		}) {
			continue
		}

		val := configValue(ktx.FlagValue(flag))
		if val != nil {
			entries = append(entries, yaml.MapItem{Key: flag.Name, Value: val})
		}
	}

	return entries
}

// configValue returns the YAML representation of a flag value, or nil when
// the value is unset or empty.
func configValue(val any) any {
	switch v := val.(type) {
	case nil:
		return nil

	case string:
		if v == "" {
			return nil
		}

		return v

	case []string:
		if len(v) == 0 {
			return nil
		}

		return v

	case []int:
		if len(v) == 0 {
			return nil
		}

		return v

	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v

	default:
		if s, ok := v.(interface{ String() string }); ok {
			return s.String()
		}

		return v
	}
}
