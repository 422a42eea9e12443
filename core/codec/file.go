package codec

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/huangsam/gradebook/core/record"
)

// ErrIOFailure wraps every read or write failure of a roster file.
var ErrIOFailure = errors.New("roster file I/O failed")

// LoadFile decodes the roster file at path. A missing file yields an empty roster.
func LoadFile(path string) (*record.Roster, DecodeStats, error) {
	r := record.NewRoster()
	stats, err := LoadFileInto(r, path)
	if err != nil {
		return nil, stats, err
	}
	return r, stats, nil
}

// LoadFileInto decodes the roster file at path and merges it into r.
// A missing file leaves r untouched.
func LoadFileInto(r *record.Roster, path string) (DecodeStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DecodeStats{}, nil
		}
		return DecodeStats{}, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return DecodeInto(r, string(data)), nil
}

// Read decodes everything from rd and merges it into r.
func Read(rd io.Reader, r *record.Roster) (DecodeStats, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return DecodeStats{}, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return DecodeInto(r, string(data)), nil
}

// SaveFile encodes records and writes them to path in one pass.
func SaveFile(path string, records []*record.Record) error {
	if err := os.WriteFile(path, []byte(Encode(records)), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}
