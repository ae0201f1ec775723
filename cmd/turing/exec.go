package main

import (
	"context"
	"log/slog"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec [program]",
	Short: "Run a machine to completion without prompts",
	Long: `Runs a machine until it halts or the step limit is reached and prints the
final tape. With --json the final snapshot is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxSteps := settings.MaxSteps
		if cmd.Flags().Changed("max-steps") {
			maxSteps, _ = cmd.Flags().GetInt("max-steps")
		}
		jsonMode, _ := cmd.Flags().GetBool("json")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		return cli.Execute(sigCtx, cli.RunOptions{
			Program:  programArg(args),
			MaxSteps: maxSteps,
			Headless: true,
			JSON:     jsonMode,
			Color:    settings.Color,
			Debug:    logger.Enabled(sigCtx, slog.LevelDebug),
			Out:      cmd.OutOrStdout(),
			Logger:   machineLogger(),
		})
	},
}

func init() {
	rootCmd.AddCommand(execCmd)

	execCmd.Flags().Int("max-steps", 0, "Stop after this many transitions (0 means unbounded)")
	execCmd.Flags().Bool("json", false, "Print the final snapshot as JSON")
}
