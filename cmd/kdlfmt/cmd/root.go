package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "kdlfmt",
	Short: "Format, parse, and validate KDL documents",
	Long: `kdlfmt is a command-line tool for the KDL document language.

It reformats documents to canonical style, validates that a document
parses at all, and can dump a document's parsed tree for inspection.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("kdlfmt version %s\n", Version))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
