// Package cmd implements the wallplan command-line driver around the
// wallplan library: a root command plus a plan subcommand.
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wallplan",
	Short: "Compute obstacle-avoiding coverage paths for a finishing tool",
	Long: `wallplan decomposes a rectangular wall's free space around
rectangular obstacles into cells, generates a zig-zag coverage scan
inside each cell, chooses a good visit order between cells, and
assembles the result into a single ordered path with summary metadata.`,
}

// Execute runs the root command. Called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log planning progress to stderr")
	rootCmd.AddCommand(planCmd)

	log.SetFlags(0)
}

func verboseLog(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}
