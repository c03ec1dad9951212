// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"breedset/internal/httputil"
)

// maxTitlesPerQuery is the MediaWiki limit on titles per query request.
const maxTitlesPerQuery = 50

// titlePair is one from→to mapping reported by the query API.
type titlePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// queryResponse mirrors the action=query&redirects API response
// (formatversion 2). Both lists are absent when nothing was rewritten.
type queryResponse struct {
	Query struct {
		Normalized []titlePair `json:"normalized"`
		Redirects  []titlePair `json:"redirects"`
	} `json:"query"`
}

// ResolveBatch resolves up to maxTitlesPerQuery titles in a single API
// round-trip. Per title it applies the reported normalization first and
// the redirect second; the two compose. Titles whose resolved form
// equals the original are omitted, so the returned map holds only true
// aliases and downstream lookups can treat absence as "no alias".
func (c *Client) ResolveBatch(ctx context.Context, titles []string) (map[string]string, error) {
	if len(titles) > maxTitlesPerQuery {
		return nil, fmt.Errorf("resolve batch of %d titles exceeds limit of %d", len(titles), maxTitlesPerQuery)
	}

	aliases := make(map[string]string)
	if len(titles) == 0 {
		return aliases, nil
	}

	params := url.Values{
		"action":        {"query"},
		"redirects":     {"1"},
		"titles":        {strings.Join(titles, "|")},
		"format":        {"json"},
		"formatversion": {"2"},
	}

	var qr queryResponse
	reqURL := c.APIBase + "?" + params.Encode()
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, httputil.Header(c.UserAgent), &qr); err != nil {
		return nil, fmt.Errorf("resolving redirects: %w", err)
	}

	normalized := make(map[string]string, len(qr.Query.Normalized))
	for _, p := range qr.Query.Normalized {
		normalized[p.From] = p.To
	}
	redirects := make(map[string]string, len(qr.Query.Redirects))
	for _, p := range qr.Query.Redirects {
		redirects[p.From] = p.To
	}

	for _, title := range titles {
		resolved := title
		if to, ok := normalized[resolved]; ok {
			resolved = to
		}
		if to, ok := redirects[resolved]; ok {
			resolved = to
		}
		if resolved != title {
			aliases[title] = resolved
		}
	}
	return aliases, nil
}

// ResolveAll splits titles into consecutive chunks of at most
// maxTitlesPerQuery, issues one ResolveBatch per chunk concurrently,
// and merges the results. Chunk keys are disjoint by construction, so
// merge order does not matter. The first failing chunk aborts the whole
// resolution; partial results are discarded.
func (c *Client) ResolveAll(ctx context.Context, titles []string) (map[string]string, error) {
	aliases := make(map[string]string)
	if len(titles) == 0 {
		return aliases, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	var mu sync.Mutex

	for start := 0; start < len(titles); start += maxTitlesPerQuery {
		end := start + maxTitlesPerQuery
		if end > len(titles) {
			end = len(titles)
		}
		chunk := titles[start:end]

		eg.Go(func() error {
			batch, err := c.ResolveBatch(egCtx, chunk)
			if err != nil {
				return err
			}
			mu.Lock()
			for from, to := range batch {
				aliases[from] = to
			}
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return aliases, nil
}
