// File: root.go
// Role: Cobra command tree, grounded on the rootCmd/var-block style used
// by the corpus's own CLI entrypoint.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "pidgraph",
	Short: "Validate and optimize P&ID equipment-connection graphs",
	Long: `pidgraph loads a detection-pipeline JSON document, builds a graph of
equipment and connector nodes joined by perpendicularity-scored edges, and
can report, optimize, or serve that graph over a websocket event stream.`,
}

func init() {
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
}
