package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pidforge/pidgraph/perpendicularity"
	"github.com/pidforge/pidgraph/schema"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Report perpendicularity-score statistics for a graph's edges",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := schema.Load(f, logger)
	if err != nil {
		return err
	}

	scores := make([]float64, 0, result.Graph.EdgeCount())
	for _, edge := range result.Graph.Edges() {
		scores = append(scores, edge.Info.Score)
	}
	stats := perpendicularity.Aggregate(scores, perpendicularity.GoodThreshold)

	fmt.Printf("total edges: %d\n", stats.Total)
	fmt.Printf("good: %d\n", stats.Good)
	fmt.Printf("bad: %d\n", stats.Bad)
	fmt.Printf("mean score: %.6f\n", stats.Mean)
	return nil
}
