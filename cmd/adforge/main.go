// Package main provides the entry point for the AdForge CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adforge",
	Short: "Competitor-aware ad copy generator",
	Long:  "AdForge analyzes competitor names, hashtags, and ZIP codes to build a marketing context, then generates scored ad variants through a configurable AI provider.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
