package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/legible/internal/adjuster"
	"github.com/jmylchreest/legible/internal/colour"
	"github.com/jmylchreest/legible/internal/config"
)

func newAdjustCmd(opts *globalOptions) *cobra.Command {
	var (
		base     string
		mode     adjuster.Mode
		contrast float64
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "adjust [colour...]",
		Short: "Recolour colours to stay legible on a background",
		Long: `Adjust colours so they reach a contrast ratio against a base background
colour. Colours are read from the arguments, or one per line from stdin.

Modes:
  disabled (-1)     every result is empty
  passthrough (0)   input is returned unchanged
  hsl-luma (1)      bisect HSL lightness to hit the target luminance
  luv (2)           replace LUV lightness with the target
  hsl-loop (3)      step HSL lightness until perceived luma crosses 0.5
  rgb-loop (4)      brighten or darken RGB in fixed steps

Examples:
  legible adjust --mode hsl-luma navy '#202040'
  legible adjust --base white --contrast 7 --mode luv < colours.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var flagCfg config.Config
			flags := cmd.Flags()
			if flags.Changed("base") {
				flagCfg.Base = &base
			}
			if flags.Changed("mode") {
				flagCfg.Mode = &mode
			}
			if flags.Changed("contrast") {
				flagCfg.Contrast = &contrast
			}
			settings := config.Merge(opts.settings, flagCfg)

			res, closeResolver, err := opts.openResolver(cmd.Context())
			if err != nil {
				return err
			}
			defer closeResolver()

			adj, err := adjuster.New(append(settings.AdjusterOptions(),
				adjuster.WithResolver(res),
				adjuster.WithLogger(opts.logger.Named("adjuster")),
			)...)
			if err != nil {
				return err
			}
			opts.logger.Debug("adjusting",
				"base", adj.Base(), "dark", adj.Dark(), "mode", adj.Mode(),
				"target_luminance", adj.TargetLuminance())

			inputs := args
			if len(inputs) == 0 {
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			preview := opts.previewEnabled(out)
			for _, in := range inputs {
				result, err := adj.ProcessStrict(in)
				if err != nil {
					if strict {
						return fmt.Errorf("cannot adjust %q: %w", in, err)
					}
					opts.logger.Warn("skipping unparseable colour", "input", in, "error", err)
				}

				line := result
				if preview && result != "" {
					if c, perr := colour.ParseCSS(result, res); perr == nil {
						line = colour.ColourPreview(c, 4) + " " + result
					}
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", adjuster.DefaultBase, "background colour to contrast against")
	cmd.Flags().Var(&mode, "mode", "adjustment mode ("+strings.Join(adjuster.ModeNames(), ", ")+", or a number)")
	cmd.Flags().Float64Var(&contrast, "contrast", adjuster.DefaultContrast, "target contrast ratio")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on the first colour that cannot be parsed")
	return cmd
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading colours: %w", err)
	}
	return lines, nil
}
