package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/catalog"
	"github.com/spf13/cobra"
)

var programsCmd = &cobra.Command{
	Use:   "programs [name]",
	Short: "List the built-in programs or describe one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var md string
		if len(args) == 0 {
			md = catalogMarkdown(catalog.All())
		} else {
			p, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			md = programMarkdown(p)
		}

		rawMode, _ := cmd.Flags().GetBool("raw")
		if rawMode {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		color := settings.Color && tui.IsTerminal(cmd.InOrStdin())
		render, err := tui.NewRenderer(color, 80)
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(programsCmd)

	programsCmd.Flags().Bool("raw", false, "Print the markdown source instead of rendering it")
}

func catalogMarkdown(programs []catalog.Program) string {
	var sb strings.Builder
	sb.WriteString("# Programs\n\n")
	sb.WriteString("| Name | Initial | Rules | Summary |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, p := range programs {
		fmt.Fprintf(&sb, "| %s | %s | %d | %s |\n", p.Name, p.Initial, len(p.Rules), p.Summary)
	}
	sb.WriteString("\nRun one with `turing run <name>`.\n")
	return sb.String()
}

func programMarkdown(p catalog.Program) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n%s\n\n", p.Name, p.Summary)
	if p.Description != "" {
		sb.WriteString(p.Description)
		sb.WriteString("\n\n")
	}
	sb.WriteString("| State | Read | Write | Move | Next |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, r := range p.Rules {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n", r.State, r.Read, r.Write, r.Move, r.Next)
	}
	return sb.String()
}
