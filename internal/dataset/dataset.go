package dataset

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNoSamples signals that a decoded file produced zero accepted samples.
// It is a condition, not a decode failure: callers surface a "no valid rows
// found" message and leave previously displayed data untouched.
var ErrNoSamples = errors.New("no valid rows found")

// Dataset is one imported sample collection. ID is a fresh identity token
// per import; Selection uses it to detect wholesale replacement.
type Dataset struct {
	ID         uuid.UUID
	Samples    []Sample
	Provenance string
}

// NewDataset normalizes decoded rows into a dataset named after its source.
// Returns ErrNoSamples when no row survives the acceptance filter.
func NewDataset(source string, rows []*Row) (*Dataset, error) {
	samples := Normalize(rows)
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	return &Dataset{
		ID:         uuid.New(),
		Samples:    samples,
		Provenance: fmt.Sprintf("Imported %s (%d rows)", source, len(samples)),
	}, nil
}
