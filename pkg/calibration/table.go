package calibration

import (
	"math"
	"slices"

	"github.com/matzehuels/scalelabel/pkg/errors"
)

// Anchor alignments at which Entry vectors apply.
const (
	MidAlignment  = 50.0
	HighAlignment = 100.0
)

// MinCount is the smallest label count a scale can have.
const MinCount = 2

// Entry is the calibration for one label count.
type Entry struct {
	High []float64 // positions at alignment 100
	Mid  []float64 // positions at alignment 50
}

// Count returns the number of labels the entry positions.
func (e Entry) Count() int { return len(e.High) }

func (e Entry) clone() Entry {
	return Entry{High: slices.Clone(e.High), Mid: slices.Clone(e.Mid)}
}

// Table is an immutable set of entries keyed by label count.
type Table struct {
	entries map[int]Entry
}

// New validates entries and returns a table holding copies of them.
func New(entries map[int]Entry) (*Table, error) {
	t := &Table{entries: make(map[int]Entry, len(entries))}
	for count, e := range entries {
		if err := validateEntry(count, e); err != nil {
			return nil, err
		}
		t.entries[count] = e.clone()
	}
	return t, nil
}

// Lookup returns a copy of the entry for count.
func (t *Table) Lookup(count int) (Entry, bool) {
	e, ok := t.entries[count]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// At returns the high and mid positions of label index for count without
// copying the vectors. It reports false when count has no entry or index is
// out of range.
func (t *Table) At(index, count int) (high, mid float64, ok bool) {
	e, found := t.entries[count]
	if !found || index < 0 || index >= len(e.High) {
		return 0, 0, false
	}
	return e.High[index], e.Mid[index], true
}

// Counts returns the calibrated label counts in ascending order.
func (t *Table) Counts() []int {
	counts := make([]int, 0, len(t.entries))
	for c := range t.entries {
		counts = append(counts, c)
	}
	slices.Sort(counts)
	return counts
}

// Len returns the number of calibrated counts.
func (t *Table) Len() int { return len(t.entries) }

func validateEntry(count int, e Entry) error {
	if count < MinCount {
		return errors.New(errors.ErrCodeInvalidCalibration, "count %d: scales need at least %d labels", count, MinCount)
	}
	if err := validateVector(count, "high", e.High); err != nil {
		return err
	}
	return validateVector(count, "mid", e.Mid)
}

func validateVector(count int, name string, v []float64) error {
	if len(v) != count {
		return errors.New(errors.ErrCodeInvalidCalibration, "count %d: %s has %d positions, want %d", count, name, len(v), count)
	}
	for i, p := range v {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 100 {
			return errors.New(errors.ErrCodeInvalidCalibration, "count %d: %s[%d] = %v outside [0,100]", count, name, i, p)
		}
		if i > 0 && p <= v[i-1] {
			return errors.New(errors.ErrCodeInvalidCalibration, "count %d: %s[%d] = %v not above %s[%d] = %v", count, name, i, p, name, i-1, v[i-1])
		}
	}
	return nil
}
