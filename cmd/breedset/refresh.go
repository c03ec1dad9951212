package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"breedset/internal/pipeline"
	"breedset/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "breedset/0.1 (dataset refresh)"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the breed dataset from Wikipedia and Wikidata",
	Long: `Refresh fetches the breed list article and the structured breed metadata
concurrently, resolves title redirects between the two, merges them into one
alphabetized record list, and overwrites the dataset file. There is no
partial output: any fetch or parse failure aborts the run before the write.`,
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	refreshCmd.Flags().String("output", "", "dataset output path (default data/breeds.json)")
	refreshCmd.Flags().String("article", "", "breed list article title")

	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = viper.GetString("refresh.output_path")
	}
	article, _ := cmd.Flags().GetString("article")
	if article == "" {
		article = viper.GetString("refresh.list_article")
	}

	cfg := types.RefreshConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		WikipediaAPI:   viper.GetString("refresh.wikipedia_api"),
		SPARQLEndpoint: viper.GetString("refresh.sparql_endpoint"),
		ListArticle:    article,
		OutputPath:     output,
	}

	records, err := pipeline.New(cfg, os.Stdout).Run(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("dataset refreshed: %d breeds\n", len(records))
	return nil
}
