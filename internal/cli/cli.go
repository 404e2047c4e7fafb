// Package cli implements the scalelabel command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scalelabel/pkg/buildinfo"
	"github.com/matzehuels/scalelabel/pkg/calibration"
	"github.com/matzehuels/scalelabel/pkg/errors"
	"github.com/matzehuels/scalelabel/pkg/labels"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "scalelabel"

	// calibrationFile is the file looked up in the config directory.
	calibrationFile = "calibration.toml"

	defaultAlignment = 50.0
	defaultWidth     = 600.0
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	calibrationPath string
	table           *calibration.Table
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Scalelabel positions the labels of visual analogue scales",
		Long:         `Scalelabel computes where the labels of a visual analogue scale slider sit along the track, shows the calibration tables behind them, and renders scales to SVG or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.calibrationPath, "calibration", "", "calibration TOML file (default: $XDG_CONFIG_HOME/scalelabel/calibration.toml if present, else built-in)")

	root.AddCommand(c.positionsCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Calibration
// =============================================================================

// calibrationTable loads the active table on first use and reuses it after.
func (c *CLI) calibrationTable() (*calibration.Table, error) {
	if c.table != nil {
		return c.table, nil
	}

	path := c.calibrationPath
	if path == "" {
		if p, ok := defaultCalibrationPath(); ok {
			path = p
		}
	}

	if path == "" {
		c.Logger.Debug("using built-in calibration")
		c.table = calibration.Default()
		return c.table, nil
	}

	t, err := calibration.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded calibration", "path", path, "counts", t.Counts())
	c.table = t
	return t, nil
}

// calculator builds a calculator over the active table.
func (c *CLI) calculator(fallback string, clamp bool) (*labels.Calculator, error) {
	policy, err := labels.ParseFallback(fallback)
	if err != nil {
		return nil, err
	}
	t, err := c.calibrationTable()
	if err != nil {
		return nil, err
	}
	opts := []labels.Option{labels.WithFallback(policy)}
	if clamp {
		opts = append(opts, labels.WithClampAlignment())
	}
	return labels.New(t, opts...), nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/scalelabel/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultCalibrationPath reports the config-dir calibration file if it exists.
func defaultCalibrationPath() (string, bool) {
	dir, err := configDir()
	if err != nil {
		return "", false
	}
	p := filepath.Join(dir, calibrationFile)
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseLabels splits a comma-separated label list, trimming spaces.
func parseLabels(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// validateFormat checks format against the allowed set.
func validateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}
