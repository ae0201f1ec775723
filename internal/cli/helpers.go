package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/catalog"
	"github.com/aretw0/turing/pkg/machine"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the fallback logger when none is injected.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) machine.Hooks[string, catalog.Bit] {
	return machine.Hooks[string, catalog.Bit]{
		OnStep: func(e machine.StepEvent[string, catalog.Bit]) {
			logger.Debug("Transition", "from", e.From, "read", e.Read, "write", e.Write, "move", e.Move, "to", e.To)
		},
		OnHalt: func(e machine.HaltEvent[string, catalog.Bit]) {
			logger.Debug("No rule", "state", e.State, "symbol", e.Symbol, "position", e.Position)
		},
	}
}

// chainHooks calls a before b for every event.
func chainHooks(a, b machine.Hooks[string, catalog.Bit]) machine.Hooks[string, catalog.Bit] {
	return machine.Hooks[string, catalog.Bit]{
		OnStep: func(e machine.StepEvent[string, catalog.Bit]) {
			if a.OnStep != nil {
				a.OnStep(e)
			}
			if b.OnStep != nil {
				b.OnStep(e)
			}
		},
		OnHalt: func(e machine.HaltEvent[string, catalog.Bit]) {
			if a.OnHalt != nil {
				a.OnHalt(e)
			}
			if b.OnHalt != nil {
				b.OnHalt(e)
			}
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, m *machine.Machine[string, catalog.Bit], err error, sig os.Signal) {
	switch {
	case err == nil && m.Halted():
		printSystemMessage(w, "Halted in state '%s' after %d steps.", m.State(), m.Steps())
	case err == nil:
		printSystemMessage(w, "Stopped in state '%s' after %d steps.", m.State(), m.Steps())
	case sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted in state '%s' after %d steps.", m.State(), m.Steps())
	case sig != nil:
		fmt.Fprintf(w, "\n")
		printSystemMessage(w, "Terminated in state '%s' after %d steps.", m.State(), m.Steps())
	default:
		printSystemMessage(w, "Interrupted in state '%s' after %d steps.", m.State(), m.Steps())
	}
}
