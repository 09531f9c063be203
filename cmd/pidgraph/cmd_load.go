package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pidforge/pidgraph/schema"
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Parse and validate a detection-pipeline JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := schema.Load(f, logger)
	if err != nil {
		return err
	}

	fmt.Printf("nodes: %d\n", result.Graph.NodeCount())
	fmt.Printf("edges: %d\n", result.Graph.EdgeCount())

	isolated := 0
	for _, id := range result.Graph.Nodes() {
		if iso, _ := result.Graph.IsIsolated(id); iso {
			isolated++
		}
	}
	fmt.Printf("isolated nodes: %d\n", isolated)
	return nil
}
