package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "repertoire",
	Short: "Opening repertoire reports from chess.com game archives",
	Long: `Repertoire pulls a chess.com player's archived games, classifies each
one into a curated opening taxonomy, and reports per-opening win rates
for both colors.

Examples:
  # Report on the last three months of blitz
  repertoire report hikaru --months 3 --time-classes blitz

  # Entire archive, all time classes, saved for later
  repertoire report hikaru --all --save hikaru-2026

  # List and reload saved reports
  repertoire reports
  repertoire show hikaru-2026`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
