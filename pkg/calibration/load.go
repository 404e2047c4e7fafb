package calibration

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/scalelabel/pkg/errors"
)

type fileFormat struct {
	Scales []fileScale `toml:"scale"`
}

type fileScale struct {
	Count int       `toml:"count"`
	High  []float64 `toml:"high"`
	Mid   []float64 `toml:"mid"`
}

// Load reads a TOML calibration file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "calibration file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidCalibration, err, "read %s", path)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a TOML calibration document.
func Parse(data []byte) (*Table, error) {
	var f fileFormat
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCalibration, err, "decode calibration")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidCalibration, "unknown key %q", undecoded[0].String())
	}
	if len(f.Scales) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCalibration, "no [[scale]] entries")
	}

	entries := make(map[int]Entry, len(f.Scales))
	for _, s := range f.Scales {
		if _, dup := entries[s.Count]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCalibration, "count %d defined more than once", s.Count)
		}
		entries[s.Count] = Entry{High: s.High, Mid: s.Mid}
	}
	return New(entries)
}
