// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the breedset pipeline.
package types

// BreedRecord is the unit of output of the refresh pipeline and the unit
// of consumption for the accessor library. All three fields are always
// present; origin and image URL may be empty strings but are never
// absent.
type BreedRecord struct {
	// Name is the canonical human-readable breed name. The breed list
	// article is the naming authority: this is always the display name
	// from the list, never the metadata label.
	Name string `json:"name" yaml:"name"`

	// Origin is a comma-separated list of country or region names, or
	// "" when unknown.
	Origin string `json:"origin" yaml:"origin"`

	// ImageURL is an https URL to a representative image, or "" when no
	// image is known.
	ImageURL string `json:"imageURL" yaml:"imageURL"`
}

// BreedMetadata is the intermediate record produced by the metadata
// fetcher, keyed elsewhere by article title. It never leaves the
// pipeline.
type BreedMetadata struct {
	// Name is the metadata source's label for the breed. Kept for
	// diagnostics; the merge step does not use it for output.
	Name string

	// Origin is the aggregated origin string (", "-separated), or "".
	Origin string

	// ImageURL is the https-normalized image URL, or "".
	ImageURL string
}
