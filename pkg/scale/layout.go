package scale

import (
	"math"

	"github.com/matzehuels/scalelabel/pkg/errors"
)

// Positioner computes label positions in percent of track width.
type Positioner interface {
	Positions(count int, alignment float64) ([]float64, error)
}

// Anchor is the horizontal text anchor of a label.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Label is one positioned label.
type Label struct {
	Index   int
	Text    string
	Percent float64 // position along the track, 0 = left edge
	X       float64 // Percent scaled to the layout width
	Anchor  Anchor
}

// Layout is a fully positioned scale.
type Layout struct {
	Width     float64
	Alignment float64
	Labels    []Label
}

// Build positions labels on a track of the given width.
func Build(p Positioner, labels []string, alignment, width float64) (Layout, error) {
	if err := errors.ValidateLabels(labels); err != nil {
		return Layout{}, err
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "track width must be positive and finite, got %v", width)
	}

	pcts, err := p.Positions(len(labels), alignment)
	if err != nil {
		return Layout{}, err
	}
	if len(pcts) != len(labels) {
		return Layout{}, errors.New(errors.ErrCodeInternal, "positioner returned %d positions for %d labels", len(pcts), len(labels))
	}

	l := Layout{Width: width, Alignment: alignment, Labels: make([]Label, len(labels))}
	for i, text := range labels {
		l.Labels[i] = Label{
			Index:   i,
			Text:    text,
			Percent: pcts[i],
			X:       pcts[i] * width / 100,
			Anchor:  anchorFor(i, len(labels)),
		}
	}
	return l, nil
}

// First and last labels hug the track ends; the rest center on their tick.
func anchorFor(i, n int) Anchor {
	switch i {
	case 0:
		return AnchorStart
	case n - 1:
		return AnchorEnd
	}
	return AnchorMiddle
}
