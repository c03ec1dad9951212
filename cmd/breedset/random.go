package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"breedset/pkg/breeds"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print one randomly chosen breed record",
	RunE:  runRandom,
}

func init() {
	randomCmd.Flags().String("dataset", defaultDatasetPath, "dataset file to read")

	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("dataset")

	collection, err := breeds.Load(path)
	if err != nil {
		return err
	}

	record, ok := breeds.NewPicker().Pick(collection)
	if !ok {
		return fmt.Errorf("dataset %s is empty", path)
	}

	fmt.Printf("%s\n", record.Name)
	if record.Origin != "" {
		fmt.Printf("  origin: %s\n", record.Origin)
	}
	if record.ImageURL != "" {
		fmt.Printf("  image:  %s\n", record.ImageURL)
	}
	return nil
}
