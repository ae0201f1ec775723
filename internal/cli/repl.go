package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/catalog"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/render"
)

const helpText = `Commands:
  <enter>     apply one transition
  <n>         apply n transitions, printing each
  run         step until the machine halts
  help        show this text
  q, quit     leave`

// RunREPL steps a machine one input line at a time and prints the tape after every transition.
func RunREPL(ctx context.Context, opts RunOptions) error {
	p, m, err := newMachine(opts)
	if err != nil {
		return err
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
		opts.Out = out
	}

	interactive := tui.IsTerminal(in)
	if opts.Banner && interactive {
		tui.PrintBanner(out, turing.Version)
	}

	r := &repl{
		m:           m,
		out:         out,
		view:        renderOptions(opts),
		maxSteps:    opts.MaxSteps,
		interactive: interactive,
	}

	printSystemMessage(out, "Program '%s': %s", p.Name, p.Summary)
	r.print()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		readErr <- err
	}()

	for {
		r.prompt()
		select {
		case <-ctx.Done():
			return finish(ctx, out, m, ctx.Err())
		case err := <-readErr:
			return finish(ctx, out, m, err)
		case line := <-lines:
			quit, err := r.handle(ctx, line)
			if err != nil {
				return finish(ctx, out, m, err)
			}
			if quit {
				return finish(ctx, out, m, nil)
			}
		}
	}
}

func finish(ctx context.Context, out io.Writer, m *machine.Machine[string, catalog.Bit], err error) error {
	var sig os.Signal
	if sc, ok := ctx.(*SignalContext); ok {
		sig = sc.Signal()
	}
	if errors.Is(err, io.EOF) {
		err = nil
	}
	logCompletion(out, m, err, sig)
	return handleExecutionError(err)
}

type repl struct {
	m           *machine.Machine[string, catalog.Bit]
	out         io.Writer
	view        render.Options
	maxSteps    int
	interactive bool
	announced   bool
}

// handle executes one input line. It reports true when the user asked to leave.
func (r *repl) handle(ctx context.Context, line string) (bool, error) {
	clean, err := sanitizeLine(line)
	if err != nil {
		printSystemMessage(r.out, "Input rejected: %v", err)
		return false, nil
	}
	cmd := strings.ToLower(strings.TrimSpace(clean))
	switch cmd {
	case "q", "quit", "exit":
		return true, nil
	case "h", "help", "?":
		fmt.Fprintln(r.out, helpText)
		return false, nil
	case "r", "run":
		_, status, err := r.m.Run(ctx, r.maxSteps)
		if err != nil {
			return false, err
		}
		r.print()
		if status == machine.Halted {
			r.announce()
		}
		return false, nil
	case "":
		return false, r.step(ctx, 1)
	}

	n, err := strconv.Atoi(cmd)
	if err != nil || n < 1 {
		printSystemMessage(r.out, "Unknown command %q. Type 'help' for commands.", clean)
		return false, nil
	}
	return false, r.step(ctx, n)
}

// step applies up to n transitions and prints the tape after each one.
// A step that finds no rule prints the unchanged tape and announces the halt.
func (r *repl) step(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.m.Step() == machine.Halted {
			if i == 0 {
				r.print()
			}
			r.announce()
			return nil
		}
		r.print()
	}
	return nil
}

func (r *repl) print() {
	fmt.Fprintln(r.out, render.TextWith(r.m.Snapshot(), r.view))
}

func (r *repl) announce() {
	if r.announced {
		return
	}
	r.announced = true
	printSystemMessage(r.out, "Halted: no rule for state '%s' reading '%s'.", r.m.State(), r.m.Symbol(r.m.Head()))
}

func (r *repl) prompt() {
	if r.interactive {
		fmt.Fprint(r.out, "> ")
	}
}
