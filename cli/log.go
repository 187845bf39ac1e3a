package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/fxc/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-level flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"text"    enum:"json,text"             help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                              help:"Set timestamp format."`
	Caller     bool      `default:"false"                                help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                 help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing. This ensures the
// logger is configured properly regardless of flag position on the command
// line.
//
// While logFormat and logLevel types implement encoding.TextUnmarshaler to
// configure the logger as flags are encountered during parsing, boolean flags
// like Pretty don't go through that interface. This pre-scan ensures all logger
// flags are applied early.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		name, negated := strings.CutPrefix(arg, "--no-log-")
		if !negated {
			var ok bool
			if name, ok = strings.CutPrefix(arg, "--log-"); !ok {
				continue
			}
		}

		name, value, assigned := strings.Cut(name, "=")

		// Non-boolean flags consume the next argument unless assigned.
		next := func() string {
			if !assigned && i+1 < len(args) && args[i+1] != "" && args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return value
		}

		// Boolean flags take a value only when assigned with '='.
		flag := func() (bool, bool) {
			v := true
			if assigned {
				var err error
				if v, err = strconv.ParseBool(value); err != nil {
					return false, false
				}
			}

			return v != negated, true
		}

		switch name {
		case "level":
			if !negated {
				_ = f.Level.UnmarshalText([]byte(next()))
			}

		case "format":
			if !negated {
				_ = f.Format.UnmarshalText([]byte(next()))
			}

		case "pretty":
			if v, ok := flag(); ok {
				f.Pretty = v
				log.Config(log.WithPretty(v))
			}

		case "caller":
			if v, ok := flag(); ok {
				f.Caller = v
				log.Config(log.WithCaller(v))
			}
		}
	}
}
