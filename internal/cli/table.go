package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scalelabel/pkg/calibration"
)

// tableCommand creates the table command that prints the active calibration.
func (c *CLI) tableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Show the active calibration table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.calibrationTable()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderCalibration(t))
			return err
		},
	}
}

// headerRow is the row index lipgloss/table passes to StyleFunc for headers.
const headerRow = -1

// renderCalibration draws one row per calibrated count.
func renderCalibration(t *calibration.Table) string {
	rows := make([][]string, 0, t.Len())
	for _, n := range t.Counts() {
		e, _ := t.Lookup(n)
		rows = append(rows, []string{strconv.Itoa(n), joinPercents(e.High), joinPercents(e.Mid)})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Labels", "Alignment 100", "Alignment 50").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == headerRow {
				return base.Inherit(styleHeader)
			}
			if col == 0 {
				return base.Inherit(StyleNumber)
			}
			return base.Inherit(StyleValue)
		})

	return StyleTitle.Render("Calibration") + "\n" + tbl.Render()
}

func joinPercents(v []float64) string {
	parts := make([]string, len(v))
	for i, p := range v {
		parts[i] = formatPercent(p)
	}
	return strings.Join(parts, "  ")
}
