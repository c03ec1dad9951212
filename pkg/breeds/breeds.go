// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package breeds exposes the persisted breed dataset as a read-only
// collection with a non-repeating random picker. It performs a single
// file load and no other I/O.
package breeds

import (
	"math/rand"

	"breedset/internal/dataset"
	"breedset/pkg/types"
)

// Collection is an immutable, alphabetically ordered set of breed records.
type Collection struct {
	records []types.BreedRecord
}

// Load reads the dataset document at path. The records keep the
// persisted order, which the refresh pipeline guarantees is
// alphabetical by name.
func Load(path string) (*Collection, error) {
	records, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return &Collection{records: records}, nil
}

// All returns every record in alphabetical order. The returned slice is
// a copy; callers cannot mutate the collection through it.
func (c *Collection) All() []types.BreedRecord {
	out := make([]types.BreedRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.records)
}

// Picker selects random records without repeating the immediately
// preceding pick. It owns the last returned index explicitly instead of
// relying on process-wide random state.
type Picker struct {
	last int
	intn func(n int) int
}

// NewPicker returns a picker with no pick history.
func NewPicker() *Picker {
	return &Picker{last: -1, intn: rand.Intn}
}

// Pick returns one random record. With two or more records it never
// returns the same index twice in a row; with exactly one record it
// always returns that record. The second return value is false when the
// collection is empty.
func (p *Picker) Pick(c *Collection) (types.BreedRecord, bool) {
	n := c.Len()
	if n == 0 {
		return types.BreedRecord{}, false
	}
	if n == 1 {
		p.last = 0
		return c.records[0], true
	}

	idx := p.intn(n)
	for idx == p.last {
		idx = p.intn(n)
	}
	p.last = idx
	return c.records[idx], true
}
