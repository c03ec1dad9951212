// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates a dataset refresh: fetch both sources,
// resolve title aliases, merge, and persist the JSON document.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"breedset/internal/dataset"
	"breedset/internal/wikidata"
	"breedset/internal/wikipedia"
	"breedset/internal/wikitext"
	"breedset/pkg/types"
)

const defaultListArticle = "List of dog breeds"

// Pipeline holds the collaborators of one refresh run. Every seam is
// injectable: tests substitute httptest-backed clients and an in-memory
// write function.
type Pipeline struct {
	Wikipedia *wikipedia.Client
	Wikidata  *wikidata.Client

	// WriteFile persists the final document. Production wiring uses
	// os.WriteFile.
	WriteFile func(path string, data []byte, perm os.FileMode) error

	// OutputPath is the destination of the persisted document.
	OutputPath string

	// ListArticle is the breed list article title.
	ListArticle string

	// Out receives progress and diagnostic output.
	Out io.Writer
}

// New wires a production pipeline from config: a live HTTP client, the
// real API endpoints, and on-disk persistence.
func New(cfg types.RefreshConfig, out io.Writer) *Pipeline {
	client := &http.Client{Timeout: cfg.Timeout}

	article := cfg.ListArticle
	if article == "" {
		article = defaultListArticle
	}

	return &Pipeline{
		Wikipedia:   wikipedia.NewClient(client, cfg),
		Wikidata:    wikidata.NewClient(client, cfg),
		WriteFile:   os.WriteFile,
		OutputPath:  cfg.OutputPath,
		ListArticle: article,
		Out:         out,
	}
}

// Run executes one refresh. The two source fetches run concurrently and
// both must succeed; alias resolution then covers every extracted
// title; the merged, sorted records are written to OutputPath in full
// and returned. Any failure aborts the run before the write step, so a
// failed run never leaves a partial document behind.
func (p *Pipeline) Run(ctx context.Context) ([]types.BreedRecord, error) {
	var (
		extracted map[string]string
		metadata  map[string]types.BreedMetadata
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		text, err := p.Wikipedia.ListWikitext(egCtx, p.ListArticle)
		if err != nil {
			return err
		}
		extracted = wikitext.Extract(text)
		return nil
	})
	eg.Go(func() error {
		var err error
		metadata, err = p.Wikidata.Breeds(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.Out, "extracted %d breeds, fetched metadata for %d articles\n",
		len(extracted), len(metadata))

	aliases, err := p.Wikipedia.ResolveAll(ctx, wikitext.Titles(extracted))
	if err != nil {
		return nil, err
	}

	records, stats := dataset.Merge(extracted, metadata, aliases)
	fmt.Fprintf(p.Out, "merged %d records: %d direct, %d via redirect, %d unmatched\n",
		stats.Total(), stats.Direct, stats.Aliased, stats.Unmatched)

	data, err := dataset.EncodeJSON(records)
	if err != nil {
		return nil, err
	}
	if err := p.WriteFile(p.OutputPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing dataset %s: %w", p.OutputPath, err)
	}
	fmt.Fprintf(p.Out, "wrote %s\n", p.OutputPath)

	return records, nil
}
