package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/scalelabel/pkg/errors"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, log.InfoLevel).RootCommand()

	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, want := range []string{"positions", "table", "render", "preview", "completion"} {
		found := false
		for _, g := range got {
			if g == want {
				found = true
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered (have %v)", want, got)
		}
	}
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"three", "Nada,Algo,Mucho", []string{"Nada", "Algo", "Mucho"}},
		{"trims spaces", " Nada , Muy intenso ", []string{"Nada", "Muy intenso"}},
		{"keeps empty entries", "a,,b", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseLabels(tt.input)); diff != "" {
				t.Errorf("parseLabels(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	if err := validateFormat("svg", formatSVG, formatJSON); err != nil {
		t.Errorf("validateFormat(svg) error = %v", err)
	}
	err := validateFormat("png", formatSVG, formatJSON)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("validateFormat(png) code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := configDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", appName); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}
}

func TestCalibrationFromConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	toml := "[[scale]]\ncount = 2\nhigh = [10, 90]\nmid = [30, 70]\n"
	if err := os.WriteFile(filepath.Join(dir, calibrationFile), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, log.InfoLevel)
	tbl, err := c.calibrationTable()
	if err != nil {
		t.Fatalf("calibrationTable() error = %v", err)
	}
	if diff := cmp.Diff([]int{2}, tbl.Counts()); diff != "" {
		t.Errorf("Counts() mismatch (-want +got):\n%s", diff)
	}

	again, _ := c.calibrationTable()
	if again != tbl {
		t.Error("calibrationTable() should reuse the loaded table")
	}
}

func TestCalibrationFlagMissingFile(t *testing.T) {
	_, err := execute(t, "table", "--calibration", filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestTableCommand(t *testing.T) {
	out, err := execute(t, "table")
	if err != nil {
		t.Fatalf("table error = %v", err)
	}
	for _, want := range []string{"Calibration", "Labels", "5  50  87", "20  50  70", "15  28  50  70  80"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(out, "scalelabel") {
		t.Error("bash completion should mention the program name")
	}

	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}
