package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/legible/internal/colour"
)

// WCAG 2 minimum contrast ratios.
const (
	ratioAALarge = 3.0
	ratioAA      = 4.5
	ratioAAA     = 7.0
)

// contrastReport is the JSON form of the contrast command's output.
type contrastReport struct {
	Foreground          string  `json:"foreground"`
	Background          string  `json:"background"`
	ForegroundLuminance float64 `json:"foreground_luminance"`
	BackgroundLuminance float64 `json:"background_luminance"`
	Ratio               float64 `json:"ratio"`
	AALarge             bool    `json:"aa_large"`
	AA                  bool    `json:"aa"`
	AAA                 bool    `json:"aaa"`
}

func newContrastReport(fg, bg colour.RGBA) contrastReport {
	ratio := colour.ContrastRatio(fg, bg)
	return contrastReport{
		Foreground:          fg.CSS(),
		Background:          bg.CSS(),
		ForegroundLuminance: fg.Luminance(),
		BackgroundLuminance: bg.Luminance(),
		Ratio:               ratio,
		AALarge:             ratio >= ratioAALarge,
		AA:                  ratio >= ratioAA,
		AAA:                 ratio >= ratioAAA,
	}
}

func newContrastCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Report the WCAG contrast ratio between two colours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, closeResolver, err := opts.openResolver(cmd.Context())
			if err != nil {
				return err
			}
			defer closeResolver()

			var pair [2]colour.RGBA
			for i, arg := range args {
				if pair[i], err = colour.ParseCSS(arg, res); err != nil {
					return fmt.Errorf("cannot parse %q: %w", arg, err)
				}
			}
			report := newContrastReport(pair[0], pair[1])

			out := cmd.OutOrStdout()
			if format == "json" {
				return writeJSON(out, report)
			}
			if format != "text" {
				return fmt.Errorf("invalid --format %q (valid: text, json)", format)
			}

			if opts.previewEnabled(out) {
				fmt.Fprintln(out, colour.ColourPreviewWithText(pair[1], "Sample", 12))
			}

			table := NewTable("METRIC", "VALUE")
			table.AddRow("foreground", report.Foreground+" (luminance "+formatLuminance(report.ForegroundLuminance)+")")
			table.AddRow("background", report.Background+" (luminance "+formatLuminance(report.BackgroundLuminance)+")")
			table.AddRow("ratio", strconv.FormatFloat(report.Ratio, 'f', 2, 64)+":1")
			table.AddRow("AA large", verdict(report.AALarge))
			table.AddRow("AA", verdict(report.AA))
			table.AddRow("AAA", verdict(report.AAA))
			_, err = table.WriteTo(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text, json)")
	return cmd
}

func formatLuminance(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}
