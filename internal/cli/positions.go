package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatSVG  = "svg"
)

// positionsOpts holds the command-line flags for the positions command.
type positionsOpts struct {
	count     int     // number of labels on the scale
	index     int     // single label to print, -1 for all
	alignment float64 // alignment factor, 50 compressed .. 100 spread
	format    string  // text or json
	fallback  string  // reject or uniform
	clamp     bool    // clamp alignment to [0,100]
}

type positionsOutput struct {
	Count     int       `json:"count"`
	Alignment float64   `json:"alignment"`
	Index     *int      `json:"index,omitempty"`
	Positions []float64 `json:"positions"`
}

// positionsCommand creates the positions command.
func (c *CLI) positionsCommand() *cobra.Command {
	opts := positionsOpts{
		index:     -1,
		alignment: defaultAlignment,
		format:    formatText,
		fallback:  "reject",
	}

	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Print label positions for a label count and alignment",
		Long: `Print where each label of a scale sits, in percent of track width.

Alignment 50 gives the compressed calibration and 100 the spread one. Other
values move along the line through both; values outside [50,100] extrapolate
unless --clamp is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format, formatText, formatJSON); err != nil {
				return err
			}
			return c.runPositions(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 3, "number of labels")
	cmd.Flags().IntVarP(&opts.index, "index", "i", opts.index, "print only this label (0-based, -1 for all)")
	cmd.Flags().Float64VarP(&opts.alignment, "alignment", "a", opts.alignment, "alignment factor (0-100)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json")
	cmd.Flags().StringVar(&opts.fallback, "fallback", opts.fallback, "uncalibrated counts: reject (default), uniform")
	cmd.Flags().BoolVar(&opts.clamp, "clamp", false, "clamp alignment to [0,100]")

	return cmd
}

func (c *CLI) runPositions(w io.Writer, opts positionsOpts) error {
	calc, err := c.calculator(opts.fallback, opts.clamp)
	if err != nil {
		return err
	}

	out := positionsOutput{Count: opts.count, Alignment: opts.alignment}
	if opts.index >= 0 {
		p, err := calc.Position(opts.index, opts.count, opts.alignment)
		if err != nil {
			return err
		}
		idx := opts.index
		out.Index = &idx
		out.Positions = []float64{p}
	} else {
		out.Positions, err = calc.Positions(opts.count, opts.alignment)
		if err != nil {
			return err
		}
	}
	c.Logger.Debug("computed positions", "count", opts.count, "alignment", opts.alignment, "fallback", calc.Fallback())

	if opts.format == formatJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	first := 0
	if out.Index != nil {
		first = *out.Index
	}
	for i, p := range out.Positions {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", first+i, formatPercent(p)); err != nil {
			return err
		}
	}
	return nil
}

// formatPercent prints a position to four significant digits.
func formatPercent(p float64) string {
	return fmt.Sprintf("%.4g", p)
}
