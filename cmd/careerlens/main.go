// Command careerlens serves and runs education and experience history analyses.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "careerlens",
		Short: "Timeline, gap and progression analysis for education and work histories",
		Long: "careerlens checks education and experience record lists for gaps, overlaps,\n" +
			"duplicates and level regressions, and scores their completeness.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}
	root.AddCommand(newServeCmd(), newAnalyzeCmd(), newValidateCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
