package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/turing/pkg/render"
)

// RunHeadless runs the machine without input until it halts, MaxSteps transitions
// were applied or ctx is cancelled, then prints the final tape.
func RunHeadless(ctx context.Context, opts RunOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	_, m, err := newMachine(opts)
	if err != nil {
		return err
	}

	_, _, runErr := m.Run(ctx, opts.MaxSteps)

	if opts.JSON {
		enc := json.NewEncoder(opts.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m.Snapshot()); err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		return handleExecutionError(runErr)
	}

	fmt.Fprintln(opts.Out, render.TextWith(m.Snapshot(), renderOptions(opts)))
	return finish(ctx, opts.Out, m, runErr)
}
