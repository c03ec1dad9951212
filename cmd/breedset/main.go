// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the breedset CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultDatasetPath is the standard on-disk location of the dataset.
const defaultDatasetPath = "data/breeds.json"

// rootCmd is the base command for the breedset CLI.
var rootCmd = &cobra.Command{
	Use:   "breedset",
	Short: "Dog breed dataset pipeline and accessors",
	Long: `breedset maintains a dataset of dog breed records (name, origin, image).
The refresh subcommand rebuilds the dataset from the Wikipedia breed list
and Wikidata metadata; list, random, and store read the persisted dataset.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./breedset.yaml or ~/.config/breedset/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("breedset")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "breedset"))
		}
	}

	viper.SetEnvPrefix("BREEDSET")
	viper.AutomaticEnv()

	viper.SetDefault("refresh.wikipedia_api", "")
	viper.SetDefault("refresh.sparql_endpoint", "")
	viper.SetDefault("refresh.list_article", "List of dog breeds")
	viper.SetDefault("refresh.output_path", defaultDatasetPath)
	viper.SetDefault("store.db_path", "data/breeds.db")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
