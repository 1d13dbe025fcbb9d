package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/legible/internal/colour"
)

func newDaltonizeCmd(opts *globalOptions) *cobra.Command {
	var cvdType string

	cmd := &cobra.Command{
		Use:   "daltonize <colour>...",
		Short: "Compensate colours for colour vision deficiency",
		Long: `Shift colours so the information a colour-blind viewer loses is moved into
channels they can still distinguish.

Types: ` + strings.Join(colour.CVDMatrixNames(), ", "),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := colour.CVDMatrices[cvdType]; !ok {
				return fmt.Errorf("%w: %q (valid: %s)", colour.ErrInvalidCVDMatrix, cvdType,
					strings.Join(colour.CVDMatrixNames(), ", "))
			}

			res, closeResolver, err := opts.openResolver(cmd.Context())
			if err != nil {
				return err
			}
			defer closeResolver()

			out := cmd.OutOrStdout()
			preview := opts.previewEnabled(out)

			table := NewTable("INPUT", "CORRECTED")
			for _, arg := range args {
				c, err := colour.ParseCSS(arg, res)
				if err != nil {
					return fmt.Errorf("cannot parse %q: %w", arg, err)
				}
				corrected, err := c.Daltonize(cvdType)
				if err != nil {
					return err
				}

				if preview {
					fmt.Fprintln(out, colour.FormatColourWithPreview(c, 4), "->", colour.FormatColourWithPreview(corrected, 4))
					continue
				}
				table.AddRow(arg, corrected.CSS())
			}

			if preview {
				return nil
			}
			_, err = table.WriteTo(out)
			return err
		},
	}

	cmd.Flags().StringVar(&cvdType, "type", "protanope", "deficiency type ("+strings.Join(colour.CVDMatrixNames(), ", ")+")")
	return cmd
}
