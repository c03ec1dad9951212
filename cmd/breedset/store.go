// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"breedset/internal/dataset"
	"breedset/internal/store"
	"breedset/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the queryable breed index (import, query, export)",
	Long: `Store maintains a SQLite index built from the dataset file. The index is
fully rebuilt on each import; the JSON dataset stays the source of truth.`,
}

// --- import subcommand ---

var storeImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Rebuild the index from the dataset file",
	RunE:  runStoreImport,
}

func runStoreImport(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("dataset")

	records, err := dataset.Load(path)
	if err != nil {
		return err
	}

	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.Import(context.Background(), records)
	if err != nil {
		return err
	}
	fmt.Printf("indexed %d breeds from %s\n", n, path)
	return nil
}

// --- query subcommand ---

var storeQueryCmd = &cobra.Command{
	Use:   "query [term]",
	Short: "Search the index by breed name or origin",
	RunE:  runStoreQuery,
}

func runStoreQuery(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a search term (matched against name and origin)")
	}
	term := strings.Join(args, " ")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	results, err := s.Query(context.Background(), term, limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	if len(results) == 0 {
		fmt.Println("No matches found.")
		return nil
	}
	formatBreedTable(results)
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the index to YAML on stdout",
	RunE:  runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	return s.ExportYAML(context.Background(), os.Stdout)
}

// --- shared helpers ---

func storeConfig(cmd *cobra.Command) types.StoreConfig {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("store.db_path")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.StoreConfig{
		DBPath:     dbPath,
		MaxResults: maxResults,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("db", "", "index database path (default data/breeds.db)")
	storeCmd.PersistentFlags().Int("max-results", 20, "default maximum number of query results")

	storeImportCmd.Flags().String("dataset", defaultDatasetPath, "dataset file to import")

	storeQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeQueryCmd.Flags().Bool("json", false, "output results as JSON")

	storeCmd.AddCommand(storeImportCmd)
	storeCmd.AddCommand(storeQueryCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
