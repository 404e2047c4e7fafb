package scale

import "encoding/json"

type jsonOutput struct {
	Width     float64     `json:"width"`
	Alignment float64     `json:"alignment"`
	Labels    []jsonLabel `json:"labels"`
}

type jsonLabel struct {
	Index   int     `json:"index"`
	Text    string  `json:"text"`
	Percent float64 `json:"percent"`
	X       float64 `json:"x"`
	Anchor  Anchor  `json:"anchor"`
}

// RenderJSON encodes the layout as indented JSON. Front ends can place each
// label with `left: <percent>%`.
func RenderJSON(l Layout) ([]byte, error) {
	out := jsonOutput{
		Width:     l.Width,
		Alignment: l.Alignment,
		Labels:    make([]jsonLabel, len(l.Labels)),
	}
	for i, lb := range l.Labels {
		out.Labels[i] = jsonLabel(lb)
	}
	return json.MarshalIndent(out, "", "  ")
}
