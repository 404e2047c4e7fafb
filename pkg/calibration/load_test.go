package calibration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/scalelabel/pkg/errors"
)

const sampleTOML = `
[[scale]]
count = 2
high  = [5, 95]
mid   = [30, 70]

[[scale]]
count = 3
high  = [4.5, 50, 87.5]
mid   = [20, 50, 70]
`

func TestParse(t *testing.T) {
	tbl, err := Parse([]byte(sampleTOML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if diff := cmp.Diff([]int{2, 3}, tbl.Counts()); diff != "" {
		t.Errorf("Counts() mismatch (-want +got):\n%s", diff)
	}

	got, _ := tbl.Lookup(3)
	want := Entry{High: []float64{4.5, 50, 87.5}, Mid: []float64{20, 50, 70}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lookup(3) mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", "[[scale]\ncount = 3"},
		{"no scales", "title = 'x'"},
		{"empty", ""},
		{"unknown key", "[[scale]]\ncount = 2\nhigh = [5, 95]\nmid = [30, 70]\nlow = [1, 2]"},
		{"duplicate count", "[[scale]]\ncount = 2\nhigh = [5, 95]\nmid = [30, 70]\n[[scale]]\ncount = 2\nhigh = [6, 94]\nmid = [30, 70]"},
		{"not increasing", "[[scale]]\ncount = 2\nhigh = [95, 5]\nmid = [30, 70]"},
		{"wrong length", "[[scale]]\ncount = 3\nhigh = [5, 95]\nmid = [30, 70]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidCalibration) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidCalibration)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calibration.toml")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[[scale]\ncount = 3"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidCalibration) {
		t.Fatalf("Load(bad) code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidCalibration)
	}
	msg := err.Error()
	if n := strings.Count(msg, string(errors.ErrCodeInvalidCalibration)); n != 1 {
		t.Errorf("Load(bad) error %q repeats the code %d times, want once", msg, n)
	}
	if !strings.Contains(msg, path) {
		t.Errorf("Load(bad) error %q should name the file", msg)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadExampleMatchesDefault(t *testing.T) {
	tbl, err := Load(filepath.Join("..", "..", "examples", "calibration.toml"))
	if err != nil {
		t.Fatalf("Load(example) error = %v", err)
	}

	def := Default()
	if diff := cmp.Diff(def.Counts(), tbl.Counts()); diff != "" {
		t.Fatalf("Counts() mismatch (-want +got):\n%s", diff)
	}
	for _, n := range def.Counts() {
		want, _ := def.Lookup(n)
		got, _ := tbl.Lookup(n)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Lookup(%d) mismatch (-want +got):\n%s", n, diff)
		}
	}
}
