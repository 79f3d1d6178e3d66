// Command latticewire is the CLI front end for the latticewire routing
// engine: it loads gate/netlist CSVs, runs a chosen sequencer (and
// optionally the A* post-optimizer), and saves the routed output CSV
// per spec.md §6's external interfaces.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latticewire",
		Short: "Route chip netlists on a 3-D lattice",
	}
	cmd.AddCommand(newRouteCmd())
	cmd.AddCommand(newReplayCmd())
	return cmd
}
