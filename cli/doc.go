// Package cli contains the command line interface for fxc.
//
// # Usage
//
//	fxc [flags] [source ...]
//	fxc translate --typed -o yaml views/
//	fxc registry --root=src src/views
//	fxc types -p 'javafx.scene.**' button
//	fxc parse main.fxml
//
// Translate is the default command, so documents may be named directly.
//
// # Type Descriptors
//
// Types referenced by documents are described in YAML. The builtin
// descriptors cover common JavaFX classes. Additional descriptor files and
// directories are searched in this order:
//
//  1. each --meta flag
//  2. each entry of FXC_META_PATH
//  3. the meta directory below the configuration directory
//
// Earlier entries take precedence over later ones and over the builtin
// descriptors.
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration
// directory (e.g. ~/.config/fxc/config.yaml). The file is a flat mapping of
// flag names to values; "fxc init" writes one from the current flags.
//
//	log-level: debug
//	meta:
//	  - ~/src/app/descriptors
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag. The
// --pprof-mode flag selects one of allocs, block, clock, cpu, goroutine,
// heap, mem, mutex, thread or trace, and --pprof-dir sets the profile output
// directory (default ~/.cache/fxc/pprof).
//
//	go build -tags pprof -o fxc .
//	fxc --pprof-mode=cpu translate views/
package cli
