package main

import (
	"fmt"

	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/catalog"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [program]",
	Short: "Export the transition table as a Mermaid diagram",
	Long: `Outputs a Mermaid state diagram (stateDiagram-v2) with one edge per rule.
With --steps the machine is run first and the visited and current states are highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := catalog.Lookup(programArg(args))
		if err != nil {
			return err
		}
		steps, _ := cmd.Flags().GetInt("steps")

		var overlay *graph.GraphOverlay
		if cmd.Flags().Changed("steps") {
			overlay = traceOverlay(p, steps)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(p.Initial, p.Rules, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Int("steps", 0, "Run this many transitions and highlight the visited states")
}

// traceOverlay runs p for up to steps transitions and records the states it passed through.
func traceOverlay(p catalog.Program, steps int) *graph.GraphOverlay {
	overlay := &graph.GraphOverlay{VisitedStates: []string{p.Initial}}
	seen := map[string]bool{p.Initial: true}

	m := p.New(machine.WithLogger(machineLogger()), machine.WithHooks(machine.Hooks[string, catalog.Bit]{
		OnStep: func(e machine.StepEvent[string, catalog.Bit]) {
			if !seen[e.To] {
				seen[e.To] = true
				overlay.VisitedStates = append(overlay.VisitedStates, e.To)
			}
		},
	}))
	for i := 0; i < steps; i++ {
		if m.Step() == machine.Halted {
			break
		}
	}
	overlay.CurrentState = m.State()
	return overlay
}
