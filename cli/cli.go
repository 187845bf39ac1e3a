package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/fxc/cli/cmd"
	"github.com/ardnew/fxc/pkg"
	"github.com/ardnew/fxc/translate"
)

// CLI is the top-level command-line interface for fxc.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Meta []string `help:"Type descriptor file or directory (repeatable, searched before ${metaEnv})" short:"m" type:"path"`

	Init      cmd.Init      `cmd:"" help:"Initialize configuration file"`
	Parse     cmd.Parse     `cmd:"" help:"Parse markup documents and print their element trees"`
	Registry  cmd.Registry  `cmd:"" help:"Generate the registry of document loaders"`
	Types     cmd.Types     `cmd:"" help:"List known types"`
	Translate cmd.Translate `cmd:"" default:"withargs" help:"Translate markup documents into loader programs"`
}

// Run executes the fxc CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		"runtime":            translate.DefaultRuntimePackage,
		"metaEnv":            metaPathEnv,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithProvider(ctx, provider(cli.Meta))

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
