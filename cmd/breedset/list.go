// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"breedset/pkg/breeds"
	"breedset/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every breed record in alphabetical order",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("dataset", defaultDatasetPath, "dataset file to read")
	listCmd.Flags().String("format", "table", "output format: table, json, or yaml")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("dataset")
	format, _ := cmd.Flags().GetString("format")

	collection, err := breeds.Load(path)
	if err != nil {
		return err
	}
	records := collection.All()

	switch format {
	case "table":
		formatBreedTable(records)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		data, err := yaml.Marshal(records)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}

func formatBreedTable(records []types.BreedRecord) {
	if len(records) == 0 {
		fmt.Println("No breeds in dataset.")
		return
	}

	fmt.Fprintf(os.Stdout, "%-40s  %-30s  %s\n", "Name", "Origin", "Image")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range records {
		name := r.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		origin := r.Origin
		if len(origin) > 30 {
			origin = origin[:27] + "..."
		}
		image := ""
		if r.ImageURL != "" {
			image = "yes"
		}
		fmt.Fprintf(os.Stdout, "%-40s  %-30s  %s\n", name, origin, image)
	}

	fmt.Fprintf(os.Stdout, "\n%d breeds\n", len(records))
}
