package labels

import (
	"github.com/matzehuels/scalelabel/pkg/calibration"
	"github.com/matzehuels/scalelabel/pkg/errors"
)

// Fallback selects what happens for label counts the table does not cover.
type Fallback int

const (
	// FallbackReject fails with UNSUPPORTED_LABEL_COUNT.
	FallbackReject Fallback = iota
	// FallbackUniform uses evenly spaced vectors from [calibration.Uniform].
	FallbackUniform
)

// String returns the flag spelling of the policy.
func (f Fallback) String() string {
	switch f {
	case FallbackReject:
		return "reject"
	case FallbackUniform:
		return "uniform"
	}
	return "unknown"
}

// ParseFallback parses "reject" or "uniform".
func ParseFallback(s string) (Fallback, error) {
	switch s {
	case "reject", "":
		return FallbackReject, nil
	case "uniform":
		return FallbackUniform, nil
	}
	return FallbackReject, errors.New(errors.ErrCodeInvalidInput, "invalid fallback: %s (must be 'reject' or 'uniform')", s)
}

// Sentinels for errors.Is checks against Calculator errors.
var (
	ErrUnsupportedLabelCount = &errors.Error{Code: errors.ErrCodeUnsupportedLabelCount}
	ErrInvalidIndex          = &errors.Error{Code: errors.ErrCodeInvalidIndex}
	ErrInvalidAlignment      = &errors.Error{Code: errors.ErrCodeInvalidAlignment}
)

// Option configures a [Calculator].
type Option func(*Calculator)

// WithFallback sets the policy for uncalibrated label counts.
func WithFallback(f Fallback) Option { return func(c *Calculator) { c.fallback = f } }

// WithClampAlignment clamps the alignment factor to [0,100] before
// interpolating.
func WithClampAlignment() Option { return func(c *Calculator) { c.clamp = true } }

// Calculator maps (index, count, alignment) to a track position in percent.
type Calculator struct {
	table    *calibration.Table
	fallback Fallback
	clamp    bool
}

// New returns a calculator over table. A nil table means [calibration.Default].
func New(table *calibration.Table, opts ...Option) *Calculator {
	if table == nil {
		table = calibration.Default()
	}
	c := &Calculator{table: table}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table returns the calibration the calculator reads.
func (c *Calculator) Table() *calibration.Table { return c.table }

// Fallback returns the configured policy for uncalibrated counts.
func (c *Calculator) Fallback() Fallback { return c.fallback }

// Position returns the horizontal position, in percent of track width, of
// label index out of count at the given alignment.
func (c *Calculator) Position(index, count int, alignment float64) (float64, error) {
	if err := c.checkCount(count); err != nil {
		return 0, err
	}
	if err := errors.ValidateIndex(index, count); err != nil {
		return 0, err
	}
	t, err := c.fraction(alignment)
	if err != nil {
		return 0, err
	}

	high, mid, ok := c.table.At(index, count)
	if !ok {
		high, mid = calibration.UniformAt(index, count)
	}
	return interpolate(mid, high, t), nil
}

// Positions returns the positions of all count labels at alignment.
func (c *Calculator) Positions(count int, alignment float64) ([]float64, error) {
	if err := c.checkCount(count); err != nil {
		return nil, err
	}
	t, err := c.fraction(alignment)
	if err != nil {
		return nil, err
	}

	e, ok := c.table.Lookup(count)
	if !ok {
		e = calibration.Uniform(count)
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = interpolate(e.Mid[i], e.High[i], t)
	}
	return out, nil
}

// Supports reports whether count can be positioned under the current policy.
func (c *Calculator) Supports(count int) bool {
	return c.checkCount(count) == nil
}

func (c *Calculator) checkCount(count int) error {
	if count < calibration.MinCount {
		return errors.New(errors.ErrCodeUnsupportedLabelCount, "label count %d below minimum %d", count, calibration.MinCount)
	}
	if _, _, ok := c.table.At(0, count); ok {
		return nil
	}
	if c.fallback == FallbackUniform {
		if count > calibration.MaxUniformCount {
			return errors.New(errors.ErrCodeUnsupportedLabelCount, "label count %d above uniform maximum %d", count, calibration.MaxUniformCount)
		}
		return nil
	}
	return errors.New(errors.ErrCodeUnsupportedLabelCount, "no calibration for %d labels (calibrated: %v)", count, c.table.Counts())
}

func (c *Calculator) fraction(alignment float64) (float64, error) {
	if err := errors.ValidateAlignment(alignment); err != nil {
		return 0, err
	}
	if c.clamp {
		alignment = min(max(alignment, 0), 100)
	}
	return (alignment - calibration.MidAlignment) / (calibration.HighAlignment - calibration.MidAlignment), nil
}

// interpolate returns mid + t*(high-mid), written so that t == 0 and t == 1
// yield the anchors bit for bit.
func interpolate(mid, high, t float64) float64 {
	return mid*(1-t) + high*t
}

var defaultCalculator = New(calibration.Default())

// ComputePosition positions a label with the built-in calibration,
// rejecting uncalibrated counts.
func ComputePosition(index, count int, alignment float64) (float64, error) {
	return defaultCalculator.Position(index, count, alignment)
}
