// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset joins extracted breed entries with fetched metadata
// and handles the persisted JSON document.
package dataset

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"breedset/pkg/types"
)

// collator defines the dataset's canonical alphabetical order: Unicode
// default collation, case- and diacritic-insensitive. Fixed here rather
// than taken from the host locale so the sort is reproducible anywhere.
var collator = collate.New(language.Und, collate.Loose)

// Stats counts how each extracted entry was matched during a merge.
// Informational only; it never changes the merge result.
type Stats struct {
	Direct    int
	Aliased   int
	Unmatched int
}

// Total returns the number of entries merged.
func (s Stats) Total() int {
	return s.Direct + s.Aliased + s.Unmatched
}

// Merge joins extracted entries with metadata, using the alias map as a
// fallback key-matching step. Per entry: look the title up in metadata
// directly; failing that, follow its alias if the alias has metadata;
// failing that, emit empty origin and image. The record name is always
// the extracted display name, never the metadata label, because the
// list article is the naming authority. One record is produced per
// extracted entry, sorted by name under the fixed collation.
func Merge(extracted map[string]string, metadata map[string]types.BreedMetadata, aliases map[string]string) ([]types.BreedRecord, Stats) {
	records := make([]types.BreedRecord, 0, len(extracted))
	var stats Stats

	for title, displayName := range extracted {
		meta, ok := metadata[title]
		if ok {
			stats.Direct++
		} else {
			if alias, hasAlias := aliases[title]; hasAlias {
				meta, ok = metadata[alias]
			}
			if ok {
				stats.Aliased++
			} else {
				meta = types.BreedMetadata{}
				stats.Unmatched++
			}
		}

		records = append(records, types.BreedRecord{
			Name:     displayName,
			Origin:   meta.Origin,
			ImageURL: meta.ImageURL,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if c := collator.CompareString(records[i].Name, records[j].Name); c != 0 {
			return c < 0
		}
		// Byte-order tiebreak keeps runs deterministic for names that
		// collate equal (case or diacritic variants).
		return records[i].Name < records[j].Name
	})

	return records, stats
}
