package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/latticewire/chip"
	"github.com/spf13/cobra"
)

func newReplayCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Load a previously saved output CSV and recompute its cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("replay: open input file: %w", err)
			}
			defer f.Close()

			c, err := chip.LoadFromCSV(f)
			if err != nil {
				return err
			}

			fmt.Printf("wires: %d\n", len(c.Wires))
			fmt.Printf("intersections: %d\n", c.WireIntersectCount())
			fmt.Printf("collisions: %d\n", c.GridCollisionCount())
			fmt.Printf("total_cost: %d\n", c.TotalCost())
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "output CSV path to replay (required)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
