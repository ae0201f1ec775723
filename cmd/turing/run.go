package main

import (
	"context"
	"log/slog"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [program]",
	Short: "Step a machine interactively",
	Long: `Starts a machine on a blank tape and applies one transition per line of input.
Enter a number to apply several transitions, "run" to continue until the machine
halts and "q" to leave.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxSteps := settings.MaxSteps
		if cmd.Flags().Changed("max-steps") {
			maxSteps, _ = cmd.Flags().GetInt("max-steps")
		}

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		return cli.Execute(sigCtx, cli.RunOptions{
			Program:  programArg(args),
			MaxSteps: maxSteps,
			Color:    settings.Color,
			Banner:   settings.Banner,
			Debug:    logger.Enabled(sigCtx, slog.LevelDebug),
			In:       cmd.InOrStdin(),
			Out:      cmd.OutOrStdout(),
			Logger:   machineLogger(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("max-steps", 0, "Step limit for the run command (0 means unbounded)")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Args = runCmd.Args
}
