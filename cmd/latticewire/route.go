package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/chiplog"
	"github.com/katalvlaran/latticewire/config"
	"github.com/katalvlaran/latticewire/optimizer"
	"github.com/katalvlaran/latticewire/sequencer"
	"github.com/spf13/cobra"
)

func newRouteCmd() *cobra.Command {
	var (
		printPath    string
		netlistPath  string
		outputPath   string
		algorithm    string
		configPath   string
		optimize     bool
		optimizeRuns int
		seed         int64
		maxOffset    int
		chipID       int
		netID        int
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Load a chip, route it, and save the output CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if maxOffset > 0 {
				cfg.MaxOffset = maxOffset
			}
			if seed != 0 {
				cfg.Seed = seed
			}

			log := chiplog.Default()

			c, err := chip.LoadChipFromFiles(printPath, netlistPath, 2)
			if err != nil {
				return err
			}
			c.ChipID, c.NetID = chipID, netID

			if err := runSequencer(c, algorithm, cfg); err != nil {
				return err
			}
			log.Iteration(algorithm, 0, c.TotalCost(), c.WireIntersectCount())

			if optimize {
				optimizer.Optimize(c, optimizeRuns, func(o *optimizer.Options) {
					o.K = cfg.OptimizerK
					o.T0 = cfg.StartTemperature
					o.Alpha = cfg.Alpha
					o.Seed = cfg.Seed
				})
				log.BestUpdated(c.TotalCost())
			}

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("route: create output file: %w", err)
			}
			defer out.Close()

			if err := c.SaveOutput(out); err != nil {
				return err
			}
			log.Stopping("done")
			return nil
		},
	}

	cmd.Flags().StringVar(&printPath, "print", "", "gate print CSV path (required)")
	cmd.Flags().StringVar(&netlistPath, "netlist", "", "netlist CSV path (required)")
	cmd.Flags().StringVar(&outputPath, "output", "output.csv", "output CSV path")
	cmd.Flags().StringVar(&algorithm, "algorithm", "greedy", "greedy|greedy-random|pseudo-random|true-random|astar|irra")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "run the A* post-optimizer after sequencing")
	cmd.Flags().IntVar(&optimizeRuns, "optimize-rounds", 50, "number of post-optimizer rounds")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed override (0 = use config default)")
	cmd.Flags().IntVar(&maxOffset, "max-offset", 0, "max search offset override (0 = use config default)")
	cmd.Flags().IntVar(&chipID, "chip-id", 0, "chip id recorded in the output CSV footer")
	cmd.Flags().IntVar(&netID, "net-id", 1, "net id recorded in the output CSV footer")

	_ = cmd.MarkFlagRequired("print")
	_ = cmd.MarkFlagRequired("netlist")

	return cmd
}

func runSequencer(c *chip.Chip, algorithm string, cfg config.Config) error {
	switch algorithm {
	case "greedy":
		sequencer.Greedy(c, sequencer.WithMaxOffset(cfg.MaxOffset), sequencer.WithShortCircuit(cfg.AllowShortCircuit))
	case "greedy-random":
		sequencer.GreedyRandom(c, sequencer.WithMaxOffset(cfg.MaxOffset), sequencer.WithSeed(cfg.Seed), sequencer.WithShortCircuit(cfg.AllowShortCircuit))
	case "pseudo-random":
		sequencer.PseudoRandom(c, sequencer.WithMaxOffset(cfg.MaxOffset), sequencer.WithSeed(cfg.Seed), sequencer.WithShortCircuit(cfg.AllowShortCircuit))
	case "true-random":
		sequencer.TrueRandom(c, sequencer.WithMaxOffset(cfg.MaxOffset), sequencer.WithSeed(cfg.Seed))
	case "astar":
		sequencer.AStarSeq(c)
	case "irra":
		opts := sequencer.DefaultIRRAOptions()
		opts.MaxOffset = cfg.MaxOffset
		opts.Seed = cfg.Seed
		opts.T0 = cfg.StartTemperature
		opts.Alpha = cfg.Alpha
		sequencer.IRRA(c, opts)
	default:
		return fmt.Errorf("route: unknown algorithm %q", algorithm)
	}
	return nil
}
