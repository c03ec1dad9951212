package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "breedset/0.1"). Wikimedia APIs require a descriptive one.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RefreshConfig holds settings for the dataset refresh pipeline.
type RefreshConfig struct {
	HTTPConfig `yaml:",inline"`

	// WikipediaAPI is the MediaWiki API endpoint used for both the breed
	// list fetch and redirect resolution.
	WikipediaAPI string `json:"wikipedia_api" yaml:"wikipedia_api"`

	// SPARQLEndpoint is the Wikidata query service endpoint.
	SPARQLEndpoint string `json:"sparql_endpoint" yaml:"sparql_endpoint"`

	// ListArticle is the article holding the breed list
	// (default "List of dog breeds").
	ListArticle string `json:"list_article" yaml:"list_article"`

	// OutputPath is where the merged JSON dataset is written.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// StoreConfig holds settings for the queryable dataset index.
type StoreConfig struct {
	// DBPath is the SQLite database file path.
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
