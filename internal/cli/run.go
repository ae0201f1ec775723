// Package cli implements the interactive and headless front ends of the turing command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/turing/internal/metrics"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/catalog"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/render"
)

// RunOptions contains all the configuration for the run and exec commands.
type RunOptions struct {
	Program  string
	MaxSteps int // 0 means unbounded
	Headless bool
	JSON     bool
	Color    bool
	Banner   bool
	Debug    bool

	In      io.Reader
	Out     io.Writer
	Logger  *slog.Logger
	Metrics *metrics.Collectors
}

// Execute handles the run and exec logic, dispatching to REPL or headless mode.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.JSON && !opts.Headless {
		return fmt.Errorf("--json requires headless execution")
	}
	if opts.Headless {
		return RunHeadless(ctx, opts)
	}
	return RunREPL(ctx, opts)
}

// newMachine builds the machine for opts.Program with logging and metrics attached.
func newMachine(opts RunOptions) (catalog.Program, *machine.Machine[string, catalog.Bit], error) {
	p, err := catalog.Lookup(opts.Program)
	if err != nil {
		return p, nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = createLogger(opts.Debug)
	}

	hooks := machine.Hooks[string, catalog.Bit]{}
	if opts.Metrics != nil {
		hooks = metrics.Hooks[string, catalog.Bit](opts.Metrics, p.Name)
	}
	if opts.Debug {
		hooks = chainHooks(hooks, createDebugHooks(logger))
	}

	m := p.New(machine.WithLogger(logger), machine.WithHooks(hooks))
	return p, m, nil
}

func renderOptions(opts RunOptions) render.Options {
	profile := tui.Profile(opts.Out, opts.Color)
	return render.Options{Color: opts.Color, Profile: profile}
}
