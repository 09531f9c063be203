// Command pidgraph loads, validates, optimizes, and serves P&ID detection
// graphs described by spec.md, via the schema/core/editor/perpendicularity
// packages.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
