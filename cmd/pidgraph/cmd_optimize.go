package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pidforge/pidgraph/editor"
	"github.com/pidforge/pidgraph/schema"
)

var optimizeOutput string

var optimizeCmd = &cobra.Command{
	Use:   "optimize <file>",
	Short: "Optimize every badly-perpendicular edge and save the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "out", "o", "", "output file (required)")
	optimizeCmd.MarkFlagRequired("out")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	result, err := schema.Load(f, logger)
	f.Close()
	if err != nil {
		return err
	}

	e := editor.NewEditor(result.Graph)
	count, err := e.OptimizeAllBadEdges()
	if err != nil {
		return err
	}

	out, err := os.Create(optimizeOutput)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := schema.Save(out, e.Graph(), result.NodeExtra, result.LinkExtra); err != nil {
		return err
	}

	fmt.Printf("optimized %d edges\n", count)
	return nil
}
