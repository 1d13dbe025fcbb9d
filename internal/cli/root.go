// Package cli provides the command-line interface for legible.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/legible/internal/colour"
	"github.com/jmylchreest/legible/internal/config"
	"github.com/jmylchreest/legible/internal/resolver"
	"github.com/jmylchreest/legible/internal/version"
)

// globalOptions holds the persistent flags and the state derived from them
// before any subcommand runs.
type globalOptions struct {
	verbose        bool
	quiet          bool
	preview        bool
	resolverPlugin string
	configPath     string

	logger   hclog.Logger
	settings config.Settings
}

// NewRootCmd builds the legible command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{logger: hclog.NewNullLogger(), settings: config.Defaults()}

	rootCmd := &cobra.Command{
		Use:   "legible",
		Short: "Colour conversion and contrast adjustment",
		Long: `Legible converts colours between RGB, HSV, HSL, CIE XYZ and CIE LUV and
recolours arbitrary colours so they stay readable against a light or dark
background at a chosen contrast ratio.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	pf.BoolVar(&opts.preview, "preview", false, "show colour swatches when writing to a terminal")
	pf.StringVar(&opts.resolverPlugin, "resolver-plugin", "", "path to a colour name resolver plugin")
	pf.StringVar(&opts.configPath, "config", "", "config file (.yaml, .toml or .json); defaults to $"+config.EnvConfig)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConvertCmd(opts),
		newAdjustCmd(opts),
		newContrastCmd(opts),
		newDaltonizeCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup builds the logger and resolves settings from defaults, the config
// file, the environment and flags, in increasing precedence.
func (o *globalOptions) setup(cmd *cobra.Command) error {
	level := hclog.Info
	switch {
	case o.quiet:
		level = hclog.Error
	case o.verbose:
		level = hclog.Debug
	}
	o.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "legible",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	path := o.configPath
	if path == "" {
		path = config.PathFromEnv(os.Getenv)
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return err
	}
	envCfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return err
	}

	var flagCfg config.Config
	flags := cmd.Flags()
	if flags.Changed("preview") {
		flagCfg.Preview = &o.preview
	}
	if flags.Changed("resolver-plugin") {
		flagCfg.ResolverPlugin = &o.resolverPlugin
	}

	o.settings = config.Merge(config.Defaults(), fileCfg, envCfg, flagCfg)
	o.logger.Debug("resolved settings", "config", path, "settings", o.settings)
	return nil
}

// openResolver returns the resolver for colour names and a function that
// releases it. A configured plugin is consulted before the built-in
// resolvers.
func (o *globalOptions) openResolver(ctx context.Context) (colour.NameResolver, func(), error) {
	chain := resolver.Default()
	if o.settings.ResolverPlugin == "" {
		return chain, func() {}, nil
	}

	p, err := resolver.OpenPlugin(ctx, o.settings.ResolverPlugin, o.logger)
	if err != nil {
		return nil, nil, err
	}
	return chain.With(p), p.Close, nil
}

// previewEnabled reports whether swatches should be written to w.
func (o *globalOptions) previewEnabled(w io.Writer) bool {
	if !o.settings.Preview {
		return false
	}
	f, ok := w.(*os.File)
	return ok && colour.SupportsANSIColours(f)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
