package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/scalelabel/pkg/errors"
)

func TestRenderSVGToStdout(t *testing.T) {
	out, err := execute(t, "render", "--labels", "Nada,Algo,Mucho", "-a", "100", "--width", "400")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.HasPrefix(out, "<svg ") {
		t.Errorf("output should be an SVG document:\n%s", out)
	}
	for _, want := range []string{`x1="20.00"`, `x1="348.00"`, ">Mucho</text>"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scale.json")
	out, err := execute(t, "render", "-l", "a,b,c,d,e,f", "--fallback", "uniform", "-f", "json", "-a", "50", "-o", path)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("status output should name the file:\n%s", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Labels []struct {
			Text    string  `json:"text"`
			Percent float64 `json:"percent"`
		} `json:"labels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Labels) != 6 || doc.Labels[5].Text != "f" {
		t.Fatalf("labels = %+v", doc.Labels)
	}
	if p := doc.Labels[5].Percent; p != 600.0/7 {
		t.Errorf("last percent = %v, want %v", p, 600.0/7)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"uncalibrated", []string{"render", "-l", "a,b,c,d,e,f"}, errors.ErrCodeUnsupportedLabelCount},
		{"single label", []string{"render", "-l", "solo"}, errors.ErrCodeUnsupportedLabelCount},
		{"empty label", []string{"render", "-l", "a,,c"}, errors.ErrCodeInvalidLabel},
		{"bad format", []string{"render", "-l", "a,b,c", "-f", "png"}, errors.ErrCodeInvalidFormat},
		{"bad width", []string{"render", "-l", "a,b,c", "--width=-5"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("%v code = %v (err %v), want %v", tt.args, got, err, tt.code)
			}
		})
	}
}

func TestRenderRequiresLabels(t *testing.T) {
	if _, err := execute(t, "render"); err == nil {
		t.Error("render without --labels should fail")
	}
}
