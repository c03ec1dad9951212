// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikidata fetches structured breed metadata from the Wikidata
// SPARQL query service.
package wikidata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"breedset/internal/httputil"
	"breedset/pkg/types"
)

// defaultEndpoint is the Wikidata query service SPARQL endpoint.
const defaultEndpoint = "https://query.wikidata.org/sparql"

// articlePathPrefix is the path prefix of enwiki article URLs. The
// article title follows it, percent-encoded with underscores for spaces.
const articlePathPrefix = "/wiki/"

// breedQuery selects every instance of "dog breed" (Q39367) that has an
// English Wikipedia article, with origin countries aggregated into one
// comma-separated string and a single sample image.
const breedQuery = `SELECT ?article ?breedLabel
  (GROUP_CONCAT(DISTINCT ?originLabel; separator=", ") AS ?origins)
  (SAMPLE(?img) AS ?image)
WHERE {
  ?breed wdt:P31 wd:Q39367 .
  ?article schema:about ?breed ;
           schema:isPartOf <https://en.wikipedia.org/> .
  OPTIONAL {
    ?breed wdt:P495 ?origin .
    ?origin rdfs:label ?originLabel .
    FILTER(LANG(?originLabel) = "en")
  }
  OPTIONAL { ?breed wdt:P18 ?img }
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en" . }
}
GROUP BY ?article ?breedLabel`

// Client queries the SPARQL endpoint. The HTTP client and endpoint are
// injectable so tests can substitute an httptest server.
type Client struct {
	HTTP      *http.Client
	Endpoint  string
	UserAgent string
}

// NewClient builds a client from config, applying defaults for unset fields.
func NewClient(httpClient *http.Client, cfg types.RefreshConfig) *Client {
	endpoint := cfg.SPARQLEndpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		HTTP:      httpClient,
		Endpoint:  endpoint,
		UserAgent: cfg.UserAgent,
	}
}

// SPARQL JSON result structures.
type sparqlResponse struct {
	Results struct {
		Bindings []sparqlBinding `json:"bindings"`
	} `json:"results"`
}

type sparqlBinding struct {
	Article    sparqlValue `json:"article"`
	BreedLabel sparqlValue `json:"breedLabel"`
	Origins    sparqlValue `json:"origins"`
	Image      sparqlValue `json:"image"`
}

type sparqlValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Breeds runs the breed query and returns metadata keyed by article title.
func (c *Client) Breeds(ctx context.Context) (map[string]types.BreedMetadata, error) {
	params := url.Values{
		"query":  {breedQuery},
		"format": {"json"},
	}

	var sr sparqlResponse
	reqURL := c.Endpoint + "?" + params.Encode()
	header := httputil.Header(c.UserAgent, "Accept", "application/sparql-results+json")
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, header, &sr); err != nil {
		return nil, fmt.Errorf("querying breed metadata: %w", err)
	}
	return parseBindings(sr.Results.Bindings), nil
}

// parseBindings converts raw query rows into metadata entries keyed by
// article title. Missing origin and image fields become empty strings,
// so no later stage has to branch on absence. First occurrence wins on
// duplicate titles.
func parseBindings(bindings []sparqlBinding) map[string]types.BreedMetadata {
	entries := make(map[string]types.BreedMetadata, len(bindings))
	for _, b := range bindings {
		title := titleFromArticleURL(b.Article.Value)
		if title == "" {
			continue
		}
		if _, ok := entries[title]; ok {
			continue
		}
		entries[title] = types.BreedMetadata{
			Name:     b.BreedLabel.Value,
			Origin:   b.Origins.Value,
			ImageURL: secureImageURL(b.Image.Value),
		}
	}
	return entries
}

// titleFromArticleURL derives the article title from a canonical article
// URL: the path segment after "/wiki/", percent-decoded, with
// underscores replaced by spaces. This reverses the encoding convention
// the source uses for multi-word titles.
func titleFromArticleURL(articleURL string) string {
	idx := strings.Index(articleURL, articlePathPrefix)
	if idx < 0 {
		return ""
	}
	raw := articleURL[idx+len(articlePathPrefix):]
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}
	return strings.ReplaceAll(raw, "_", " ")
}

// secureImageURL rewrites an http:// image URL to https:// by literal
// prefix substitution. Only the leading scheme token is affected;
// https URLs and empty strings pass through unchanged.
func secureImageURL(imageURL string) string {
	if strings.HasPrefix(imageURL, "http://") {
		return "https://" + strings.TrimPrefix(imageURL, "http://")
	}
	return imageURL
}
