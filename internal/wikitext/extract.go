// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikitext extracts breed entries from list-formatted wiki markup.
package wikitext

import (
	"regexp"
	"sort"
	"strings"
)

// extinctHeading marks the start of the extinct-breeds section of the
// list article. Everything from this heading onward is out of scope.
const extinctHeading = "Extinct breeds"

// linkPattern matches wiki link constructs: [[Title]] and [[Title|Display]].
var linkPattern = regexp.MustCompile(`\[\[([^\[\]|]+)(?:\|([^\[\]|]+))?\]\]`)

// Extract parses raw wikitext into a map from article title to display
// name. Only the text preceding the extinct-breeds heading is scanned;
// when the heading is absent the whole text is in scope. The first
// occurrence wins on duplicate titles. Extraction is purely textual:
// malformed or absent link syntax yields fewer or zero entries, never
// an error.
func Extract(rawText string) map[string]string {
	if idx := strings.Index(rawText, extinctHeading); idx >= 0 {
		rawText = rawText[:idx]
	}

	entries := make(map[string]string)
	for _, m := range linkPattern.FindAllStringSubmatch(rawText, -1) {
		title := strings.TrimSpace(m[1])
		if title == "" {
			continue
		}
		if _, ok := entries[title]; ok {
			continue
		}
		display := title
		if m[2] != "" {
			display = strings.TrimSpace(m[2])
		}
		entries[title] = display
	}
	return entries
}

// Titles returns the extracted article titles in sorted order. The
// alias resolver chunks its input, so a stable order keeps chunk
// boundaries reproducible across runs.
func Titles(entries map[string]string) []string {
	titles := make([]string, 0, len(entries))
	for title := range entries {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}
