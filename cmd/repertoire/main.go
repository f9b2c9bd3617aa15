// Package main provides the repertoire CLI tool for building opening
// reports from chess.com game archives.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
