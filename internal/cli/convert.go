package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/legible/internal/colour"
	"github.com/jmylchreest/legible/internal/resolver"
)

var convertTargets = []string{"all", "rgb", "hsv", "hsl", "xyz", "luv", "hex", "css", "ansi"}

// conversion is one input expressed in every representation.
type conversion struct {
	Input string      `json:"input"`
	Hex   string      `json:"hex"`
	CSS   string      `json:"css"`
	RGBA  colour.RGBA `json:"rgba"`
	HSVA  colour.HSVA `json:"hsva"`
	HSLA  colour.HSLA `json:"hsla"`
	XYZA  colour.XYZA `json:"xyza"`
	LUVA  colour.LUVA `json:"luva"`
	ANSI  string      `json:"ansi"`
}

func newConversion(input string, c colour.RGBA) conversion {
	return conversion{
		Input: input,
		Hex:   c.Hex(),
		CSS:   c.CSS(),
		RGBA:  c,
		HSVA:  c.ToHSVA(),
		HSLA:  c.ToHSLA(),
		XYZA:  c.ToXYZA(),
		LUVA:  c.ToLUVA(),
		ANSI:  resolver.NearestTerminalName(c),
	}
}

// field returns the text form of one target.
func (c conversion) field(target string) string {
	switch target {
	case "rgb":
		return channels(c.RGBA.R, c.RGBA.G, c.RGBA.B, c.RGBA.A)
	case "hsv":
		return channels(c.HSVA.H, c.HSVA.S, c.HSVA.V, c.HSVA.A)
	case "hsl":
		return channels(c.HSLA.H, c.HSLA.S, c.HSLA.L, c.HSLA.A)
	case "xyz":
		return channels(c.XYZA.X, c.XYZA.Y, c.XYZA.Z, c.XYZA.A)
	case "luv":
		return channels(c.LUVA.L, c.LUVA.U, c.LUVA.V, c.LUVA.A)
	case "hex":
		return c.Hex
	case "ansi":
		return c.ANSI
	default:
		return c.CSS
	}
}

func channels(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', 4, 64)
	}
	return strings.Join(parts, " ")
}

func newConvertCmd(opts *globalOptions) *cobra.Command {
	var (
		target string
		format string
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Convert colours between representations",
		Long: `Convert colours given as hex, CSS functions or names into RGB, HSV, HSL,
CIE XYZ and CIE LUV.

Examples:
  legible convert '#ff8000'
  legible convert teal 'hsl(200, 50%, 40%)' --to luv
  legible convert red --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(convertTargets, target) {
				return fmt.Errorf("invalid --to %q (valid: %s)", target, strings.Join(convertTargets, ", "))
			}

			res, closeResolver, err := opts.openResolver(cmd.Context())
			if err != nil {
				return err
			}
			defer closeResolver()

			results := make([]conversion, 0, len(args))
			for _, arg := range args {
				c, err := colour.ParseCSS(arg, res)
				if err != nil {
					return fmt.Errorf("cannot parse %q: %w", arg, err)
				}
				results = append(results, newConversion(arg, c))
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(out, results)
			case "text":
				return writeConversions(out, results, target, opts.previewEnabled(out))
			default:
				return fmt.Errorf("invalid --format %q (valid: text, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&target, "to", "all", "target representation ("+strings.Join(convertTargets, ", ")+")")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text, json)")
	return cmd
}

func writeConversions(w io.Writer, results []conversion, target string, preview bool) error {
	if target != "all" {
		for _, r := range results {
			line := r.field(target)
			if preview {
				line = colour.ColourPreview(r.RGBA, 4) + " " + line
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}

	table := NewTable("INPUT", "HEX", "RGB", "HSV", "HSL", "XYZ", "LUV", "ANSI")
	for _, r := range results {
		table.AddRow(r.Input, r.Hex, r.field("rgb"), r.field("hsv"), r.field("hsl"), r.field("xyz"), r.field("luv"), r.ANSI)
	}
	_, err := table.WriteTo(w)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
