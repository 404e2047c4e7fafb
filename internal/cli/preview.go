package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scalelabel/pkg/errors"
	"github.com/matzehuels/scalelabel/pkg/scale"
)

const (
	previewColumns    = 60
	previewMinColumns = 20
	stepFine          = 1.0
	stepCoarse        = 10.0
)

var previewPercentStyle = lipgloss.NewStyle().Foreground(colorGray)

// previewCommand creates the preview command: an interactive alignment slider.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		labelsFlag string
		alignment  float64
		fallback   string
		clamp      bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively adjust alignment and watch the labels move",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := c.calculator(fallback, clamp)
			if err != nil {
				return err
			}
			texts := parseLabels(labelsFlag)
			if err := errors.ValidateLabels(texts); err != nil {
				return err
			}

			m := NewPreviewModel(calc, texts, alignment)
			if m.Err != nil {
				return m.Err
			}
			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(PreviewModel); ok {
				c.Logger.Info("preview closed", "alignment", fm.Alignment)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&labelsFlag, "labels", "l", "", "comma-separated label texts (required)")
	cmd.Flags().Float64VarP(&alignment, "alignment", "a", defaultAlignment, "starting alignment factor")
	cmd.Flags().StringVar(&fallback, "fallback", "reject", "uncalibrated counts: reject (default), uniform")
	cmd.Flags().BoolVar(&clamp, "clamp", false, "clamp alignment to [0,100]")
	_ = cmd.MarkFlagRequired("labels")

	return cmd
}

// =============================================================================
// PreviewModel - Interactive alignment slider
// =============================================================================

// PreviewModel is the bubbletea model for the preview command.
type PreviewModel struct {
	Positioner scale.Positioner
	Labels     []string
	Alignment  float64
	Columns    int
	Layout     scale.Layout
	Err        error
}

// NewPreviewModel creates a preview model and computes its first layout.
func NewPreviewModel(p scale.Positioner, labels []string, alignment float64) PreviewModel {
	m := PreviewModel{
		Positioner: p,
		Labels:     labels,
		Alignment:  alignment,
		Columns:    previewColumns,
	}
	m.relayout()
	return m
}

func (m *PreviewModel) relayout() {
	m.Layout, m.Err = scale.Build(m.Positioner, m.Labels, m.Alignment, 100)
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.Alignment -= stepFine
		case "right", "l":
			m.Alignment += stepFine
		case "shift+left", "H":
			m.Alignment -= stepCoarse
		case "shift+right", "L":
			m.Alignment += stepCoarse
		case "m":
			m.Alignment = 50
		case "s":
			m.Alignment = 100
		default:
			return m, nil
		}
		m.relayout()
	case tea.WindowSizeMsg:
		m.Columns = max(previewMinColumns, msg.Width-4)
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Scale Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ ±1  shift+←/→ ±10  m mid  s spread  q quit"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("alignment %s\n\n", StyleNumber.Render(formatPercent(m.Alignment))))

	if m.Err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + errors.UserMessage(m.Err) + "\n")
		return b.String()
	}

	b.WriteString(scale.RenderText(m.Layout, m.Columns))
	b.WriteString("\n\n")

	parts := make([]string, len(m.Layout.Labels))
	for i, lb := range m.Layout.Labels {
		parts[i] = fmt.Sprintf("%s %s", lb.Text, formatPercent(lb.Percent))
	}
	b.WriteString(previewPercentStyle.Render(strings.Join(parts, " · ")))
	b.WriteString("\n")

	return b.String()
}
