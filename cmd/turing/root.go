package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/logging"
	"github.com/spf13/cobra"
)

var (
	settings  = config.Default()
	logger    = logging.NewNop()
	traceFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "turing",
	Short: "turing simulates single-tape Turing machines",
	Long: `turing runs Turing machines from a built-in catalog on a bi-infinite tape.
Step them interactively, run them to completion, serve them over HTTP or
expose them to AI agents through MCP.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if traceFile != nil {
			_ = traceFile.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("trace", "", "Also write every log record as JSON to this file")
}

// loadSettings merges the config file with the persistent flags and builds the logger.
func loadSettings(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	loaded, err := config.Load(path, !flags.Changed("config"))
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		loaded.LogLevel, _ = flags.GetString("log-level")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		loaded.Color = false
	}
	if flags.Changed("trace") {
		loaded.Trace, _ = flags.GetString("trace")
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(loaded.LogLevel)
	if err != nil {
		return err
	}

	if loaded.Trace != "" {
		f, err := os.Create(loaded.Trace)
		if err != nil {
			return fmt.Errorf("failed to open trace file: %w", err)
		}
		traceFile = f
		logger = logging.NewWithTrace(level, f)
	} else {
		logger = logging.New(level)
	}
	slog.SetDefault(logger)

	settings = loaded
	return nil
}

// machineLogger is the logger handed to machines. Per-step records are only useful
// when debugging or tracing, so otherwise machines stay silent.
func machineLogger() *slog.Logger {
	if settings.Trace != "" || logger.Enabled(context.Background(), slog.LevelDebug) {
		return logger
	}
	return logging.NewNop()
}

// programArg returns the program named on the command line or the configured default.
func programArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return settings.Program
}
