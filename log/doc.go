// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("translation started", slog.String("source", path))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// Library packages accept a [Logger] through their own options and default to
// the zero value, which discards everything.
//
// # Default Logger
//
// Package-level functions such as [Info] and [ErrorContext] write to a
// process-wide default logger that the CLI reconfigures with [Config].
//
// # Levels and Formats
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn] and [LevelError]. Output is either [FormatJSON] (default) or
// [FormatText]; text output can be colorized with [WithPretty].
package log
