package record

import (
	"fmt"
	"slices"
	"strings"
)

// Roster is a caller-owned directory of records keyed by lowercase name.
// It keeps insertion order so listings and encodes are deterministic.
// A Roster is not safe for concurrent use.
type Roster struct {
	records map[string]*Record
	order   []string
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{records: make(map[string]*Record)}
}

// Len returns the number of students.
func (r *Roster) Len() int {
	return len(r.order)
}

// Insert adds a record. It fails with ErrDuplicateStudent if the key is taken.
func (r *Roster) Insert(rec *Record) error {
	key := rec.Key()
	if _, ok := r.records[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateStudent, rec.Name())
	}
	r.records[key] = rec
	r.order = append(r.order, key)
	return nil
}

// Add creates and inserts a record for name.
func (r *Roster) Add(name string) (*Record, error) {
	rec, err := NewRecord(name)
	if err != nil {
		return nil, err
	}
	if err := r.Insert(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get looks up a record by name, case-insensitively.
func (r *Roster) Get(name string) (*Record, bool) {
	rec, ok := r.records[Key(name)]
	return rec, ok
}

// MustGet is Get with ErrStudentNotFound for a missing name.
func (r *Roster) MustGet(name string) (*Record, error) {
	rec, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, strings.TrimSpace(name))
	}
	return rec, nil
}

// GetOrCreate returns the record for name, inserting a new one if absent.
func (r *Roster) GetOrCreate(name string) (*Record, error) {
	if rec, ok := r.Get(name); ok {
		return rec, nil
	}
	return r.Add(name)
}

// Remove deletes a record by name and reports whether it existed.
func (r *Roster) Remove(name string) bool {
	key := Key(name)
	if _, ok := r.records[key]; !ok {
		return false
	}
	delete(r.records, key)
	if i := slices.Index(r.order, key); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// Records returns the records in insertion order.
func (r *Roster) Records() []*Record {
	out := make([]*Record, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.records[key])
	}
	return out
}

// Names returns the display names in insertion order.
func (r *Roster) Names() []string {
	out := make([]string, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.records[key].Name())
	}
	return out
}

// MergeRow folds one persisted row into the roster without validating it.
// The weight overwrites the stored weight for the subject and the grades are
// appended after any existing ones. A new record is created for an unknown name.
func (r *Roster) MergeRow(name, subject string, grades []int, weight float64) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ErrEmptySubject
	}
	rec, err := r.GetOrCreate(name)
	if err != nil {
		return err
	}
	rec.setWeightRaw(subject, weight)
	for _, g := range grades {
		rec.appendRaw(subject, g)
	}
	return nil
}
