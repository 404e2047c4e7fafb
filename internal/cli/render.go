package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scalelabel/pkg/errors"
	"github.com/matzehuels/scalelabel/pkg/scale"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	labels    string  // comma-separated label texts
	alignment float64 // alignment factor
	width     float64 // track width in user units
	height    float64 // SVG frame height
	fontSize  float64 // SVG label font size
	format    string  // svg or json
	output    string  // output file, stdout when empty
	fallback  string  // reject or uniform
	clamp     bool    // clamp alignment to [0,100]
}

// renderCommand creates the render command for writing a scale as SVG or JSON.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		alignment: defaultAlignment,
		width:     defaultWidth,
		height:    80,
		fontSize:  14,
		format:    formatSVG,
		fallback:  "reject",
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a labelled scale to SVG or JSON",
		Example: `  scalelabel render --labels "Nada,Algo,Mucho" -a 80 -o scale.svg
  scalelabel render --labels "1,2,3,4,5,6" --fallback uniform -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format, formatSVG, formatJSON); err != nil {
				return err
			}
			return c.runRender(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.labels, "labels", "l", "", "comma-separated label texts (required)")
	cmd.Flags().Float64VarP(&opts.alignment, "alignment", "a", opts.alignment, "alignment factor (0-100)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "track width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "frame height (svg)")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", opts.fontSize, "label font size (svg)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.fallback, "fallback", opts.fallback, "uncalibrated counts: reject (default), uniform")
	cmd.Flags().BoolVar(&opts.clamp, "clamp", false, "clamp alignment to [0,100]")
	_ = cmd.MarkFlagRequired("labels")

	return cmd
}

func (c *CLI) runRender(w io.Writer, opts renderOpts) error {
	prog := newProgress(c.Logger)

	calc, err := c.calculator(opts.fallback, opts.clamp)
	if err != nil {
		return err
	}

	l, err := scale.Build(calc, parseLabels(opts.labels), opts.alignment, opts.width)
	if err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case formatJSON:
		if data, err = scale.RenderJSON(l); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
		}
		data = append(data, '\n')
	default:
		data = scale.RenderSVG(l, scale.WithHeight(opts.height), scale.WithFontSize(opts.fontSize))
	}

	if opts.output == "" {
		_, err = w.Write(data)
		return err
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Rendered %d labels", len(l.Labels)))
	printSuccess(w, "Wrote %s", opts.format)
	printFile(w, opts.output)
	return nil
}
