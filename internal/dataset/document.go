// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"breedset/pkg/types"
)

// EncodeJSON serializes records as a JSON array of objects (field order
// name, origin, imageURL) with two-space indentation and exactly one
// trailing newline. A nil slice encodes as an empty array, not null.
func EncodeJSON(records []types.BreedRecord) ([]byte, error) {
	if records == nil {
		records = []types.BreedRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling dataset: %w", err)
	}
	return append(data, '\n'), nil
}

// Load reads a persisted dataset document from path.
func Load(path string) ([]types.BreedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	var records []types.BreedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	return records, nil
}
