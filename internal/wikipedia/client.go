// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikipedia talks to the MediaWiki API: it fetches the raw
// wikitext of the breed list article and resolves title redirects.
package wikipedia

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"breedset/internal/httputil"
	"breedset/pkg/types"
)

// defaultAPIBase is the English Wikipedia MediaWiki API endpoint.
const defaultAPIBase = "https://en.wikipedia.org/w/api.php"

// Client queries the MediaWiki API. The HTTP client and API base are
// injectable so tests can substitute an httptest server.
type Client struct {
	HTTP      *http.Client
	APIBase   string
	UserAgent string
}

// NewClient builds a client from config, applying defaults for unset fields.
func NewClient(httpClient *http.Client, cfg types.RefreshConfig) *Client {
	base := cfg.WikipediaAPI
	if base == "" {
		base = defaultAPIBase
	}
	return &Client{
		HTTP:      httpClient,
		APIBase:   base,
		UserAgent: cfg.UserAgent,
	}
}

// parseResponse mirrors the action=parse API response (formatversion 2).
type parseResponse struct {
	Parse struct {
		Title    string `json:"title"`
		Wikitext string `json:"wikitext"`
	} `json:"parse"`
}

// ListWikitext fetches the raw wikitext of the named article.
func (c *Client) ListWikitext(ctx context.Context, article string) (string, error) {
	params := url.Values{
		"action":        {"parse"},
		"page":          {article},
		"prop":          {"wikitext"},
		"format":        {"json"},
		"formatversion": {"2"},
	}

	var pr parseResponse
	reqURL := c.APIBase + "?" + params.Encode()
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, httputil.Header(c.UserAgent), &pr); err != nil {
		return "", fmt.Errorf("fetching wikitext for %q: %w", article, err)
	}
	return pr.Parse.Wikitext, nil
}
