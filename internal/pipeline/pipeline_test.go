// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// End-to-end refresh test against mock Wikipedia and Wikidata servers.

package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"breedset/internal/wikidata"
	"breedset/internal/wikipedia"
	"breedset/pkg/types"
)

const pipelineWikitextJSON = `{"parse": {"title": "List of dog breeds", "wikitext": "==Breeds==\n* [[Affenpinscher]]\n* [[Akita (dog)|Akita]]\n* [[Mystery Hound]]\n\n==Extinct breeds==\n* [[Alpine Mastiff]]\n"}}`

const pipelineRedirectsJSON = `{"query": {"redirects": [{"from": "Akita (dog)", "to": "Akita (dog breed)"}]}}`

const pipelineSPARQLJSON = `{
  "results": {
    "bindings": [
      {
        "article": {"type": "uri", "value": "https://en.wikipedia.org/wiki/Affenpinscher"},
        "breedLabel": {"type": "literal", "value": "Affenpinscher"},
        "origins": {"type": "literal", "value": "Germany"},
        "image": {"type": "uri", "value": "http://commons.wikimedia.org/wiki/Special:FilePath/Affenpinscher.jpg"}
      },
      {
        "article": {"type": "uri", "value": "https://en.wikipedia.org/wiki/Akita_%28dog_breed%29"},
        "breedLabel": {"type": "literal", "value": "Akita"},
        "origins": {"type": "literal", "value": "Japan"},
        "image": {"type": "uri", "value": "https://commons.wikimedia.org/wiki/Special:FilePath/Akita.jpg"}
      }
    ]
  }
}`

// newRefreshTestServer serves both the MediaWiki API and the SPARQL
// endpoint from one mock, keyed by path and action parameter.
func newRefreshTestServer(t *testing.T, sparqlStatus int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/w/api.php" && r.URL.Query().Get("action") == "parse":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, pipelineWikitextJSON)

		case r.URL.Path == "/w/api.php" && r.URL.Query().Get("action") == "query":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, pipelineRedirectsJSON)

		case r.URL.Path == "/sparql":
			if sparqlStatus != http.StatusOK {
				w.WriteHeader(sparqlStatus)
				return
			}
			w.Header().Set("Content-Type", "application/sparql-results+json")
			io.WriteString(w, pipelineSPARQLJSON)

		default:
			http.NotFound(w, r)
		}
	}))
}

func testPipeline(ts *httptest.Server, outputPath string, out *bytes.Buffer) *Pipeline {
	cfg := types.RefreshConfig{
		HTTPConfig:     types.HTTPConfig{UserAgent: "breedset-test/0"},
		WikipediaAPI:   ts.URL + "/w/api.php",
		SPARQLEndpoint: ts.URL + "/sparql",
	}
	return &Pipeline{
		Wikipedia:   wikipedia.NewClient(ts.Client(), cfg),
		Wikidata:    wikidata.NewClient(ts.Client(), cfg),
		WriteFile:   os.WriteFile,
		OutputPath:  outputPath,
		ListArticle: "List of dog breeds",
		Out:         out,
	}
}

func TestRunEndToEnd(t *testing.T) {
	ts := newRefreshTestServer(t, http.StatusOK)
	defer ts.Close()

	outputPath := filepath.Join(t.TempDir(), "breeds.json")
	var out bytes.Buffer

	records, err := testPipeline(ts, outputPath, &out).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// One record per extant extracted entry, alphabetical by name.
	want := []types.BreedRecord{
		{Name: "Affenpinscher", Origin: "Germany", ImageURL: "https://commons.wikimedia.org/wiki/Special:FilePath/Affenpinscher.jpg"},
		{Name: "Akita", Origin: "Japan", ImageURL: "https://commons.wikimedia.org/wiki/Special:FilePath/Akita.jpg"},
		{Name: "Mystery Hound", Origin: "", ImageURL: ""},
	}
	if len(records) != len(want) {
		t.Fatalf("Run returned %d records, want %d: %v", len(records), len(want), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("records[%d] = %+v, want %+v", i, records[i], want[i])
		}
	}

	// The extinct section must not leak into the dataset.
	for _, r := range records {
		if r.Name == "Alpine Mastiff" {
			t.Error("extinct breed leaked into the dataset")
		}
	}

	// The persisted document matches the returned records and ends with
	// exactly one newline.
	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasSuffix(string(data), "}\n]\n") {
		t.Errorf("document should end with a single trailing newline, got %q", string(data[len(data)-8:]))
	}
	var persisted []types.BreedRecord
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("parsing persisted document: %v", err)
	}
	if len(persisted) != len(records) {
		t.Errorf("persisted %d records, returned %d", len(persisted), len(records))
	}

	// Diagnostic summary mentions the merge stats.
	if !strings.Contains(out.String(), "merged 3 records") {
		t.Errorf("missing merge summary in output: %q", out.String())
	}
}

func TestRunSourceFailureWritesNothing(t *testing.T) {
	ts := newRefreshTestServer(t, http.StatusServiceUnavailable)
	defer ts.Close()

	outputPath := filepath.Join(t.TempDir(), "breeds.json")
	var out bytes.Buffer

	_, err := testPipeline(ts, outputPath, &out).Run(context.Background())
	if err == nil {
		t.Fatal("Run should fail when the metadata fetch fails")
	}
	if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
		t.Error("failed run must not leave a partial document behind")
	}
}

func TestRunEmptyListYieldsEmptyDocument(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Query().Get("action") == "parse":
			fmt.Fprint(w, `{"parse": {"wikitext": "nothing resembling a list"}}`)
		case r.URL.Path == "/sparql":
			fmt.Fprint(w, `{"results": {"bindings": []}}`)
		default:
			fmt.Fprint(w, `{"query": {}}`)
		}
	}))
	defer ts.Close()

	outputPath := filepath.Join(t.TempDir(), "breeds.json")
	var out bytes.Buffer

	records, err := testPipeline(ts, outputPath, &out).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %v, want none", records)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "[]\n" {
		t.Errorf("document = %q, want empty array", string(data))
	}
}

func TestRunInjectableWriteSeam(t *testing.T) {
	ts := newRefreshTestServer(t, http.StatusOK)
	defer ts.Close()

	var wrotePath string
	var wroteData []byte
	var out bytes.Buffer

	p := testPipeline(ts, "ignored/breeds.json", &out)
	p.WriteFile = func(path string, data []byte, perm os.FileMode) error {
		wrotePath = path
		wroteData = data
		return nil
	}

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if wrotePath != "ignored/breeds.json" {
		t.Errorf("wrote to %q", wrotePath)
	}
	if len(wroteData) == 0 {
		t.Error("write capability received no data")
	}
}
