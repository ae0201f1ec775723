package machine

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/turing/pkg/tape"
)

// Machine is a single-tape Turing machine.
type Machine[S, A comparable] struct {
	name  string
	rules []Rule[S, A]

	// mem is laid out as [0, -1, 1, -2, 2, …]; see package tape.
	mem   []A
	head  int
	state S
	steps int

	haltReported bool

	logger *slog.Logger
	hooks  Hooks[S, A]
}

// New creates a machine in the initial state with a single blank cell under the head.
// The rule table is copied; the first rule matching a (state, symbol) pair wins.
func New[S, A comparable](initial S, rules []Rule[S, A], opts ...Option) *Machine[S, A] {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	m := &Machine[S, A]{
		name:   cfg.name,
		rules:  append([]Rule[S, A](nil), rules...),
		mem:    make([]A, 1),
		state:  initial,
		logger: cfg.logger,
	}

	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.name != "" {
		m.logger = m.logger.With("machine", m.name)
	}

	if cfg.hooks != nil {
		hooks, ok := cfg.hooks.(Hooks[S, A])
		if ok {
			m.hooks = hooks
		} else {
			m.logger.Warn("ignoring hooks with mismatched type parameters")
		}
	}

	return m
}

// Delta returns the first rule matching state and symbol.
func (m *Machine[S, A]) Delta(state S, symbol A) (Rule[S, A], bool) {
	for _, r := range m.rules {
		if r.Matches(state, symbol) {
			return r, true
		}
	}
	return Rule[S, A]{}, false
}

// Step applies one transition. The symbol is written before the head moves and the
// state changes last. If no rule matches, nothing changes and Halted is returned.
func (m *Machine[S, A]) Step() Status {
	read := m.mem[m.head]
	rule, ok := m.Delta(m.state, read)
	if !ok {
		m.halt(read)
		return Halted
	}

	from := m.head
	m.mem[m.head] = rule.Write
	if next, moved := tape.Resolve(rule.Move, m.head); moved {
		m.grow(next)
		m.head = next
	}
	prev := m.state
	m.state = rule.Next
	m.steps++

	m.logger.Debug("step",
		"step", m.steps,
		"from", prev,
		"read", read,
		"write", rule.Write,
		"move", rule.Move,
		"to", rule.Next,
		"head", tape.Position(m.head),
	)
	if m.hooks.OnStep != nil {
		m.hooks.OnStep(StepEvent[S, A]{
			Machine:  m.name,
			Step:     m.steps,
			From:     prev,
			To:       rule.Next,
			Read:     read,
			Write:    rule.Write,
			Move:     rule.Move,
			Position: tape.Position(from),
			Head:     tape.Position(m.head),
			Cells:    len(m.mem),
		})
	}

	return Stepped
}

// Run steps until the machine halts, maxSteps transitions have been applied or ctx is
// done. maxSteps <= 0 means no limit. It returns the number of transitions applied.
func (m *Machine[S, A]) Run(ctx context.Context, maxSteps int) (int, Status, error) {
	n := 0
	for maxSteps <= 0 || n < maxSteps {
		if err := ctx.Err(); err != nil {
			return n, Stepped, err
		}
		if m.Step() == Halted {
			return n, Halted, nil
		}
		n++
	}
	return n, Stepped, nil
}

// grow appends blanks until index addresses a cell.
func (m *Machine[S, A]) grow(index int) {
	if index < len(m.mem) {
		return
	}
	m.mem = append(m.mem, make([]A, index+1-len(m.mem))...)
}

func (m *Machine[S, A]) halt(symbol A) {
	if m.haltReported {
		return
	}
	m.haltReported = true

	m.logger.Info("halted",
		"steps", m.steps,
		"state", m.state,
		"symbol", symbol,
		"head", tape.Position(m.head),
	)
	if m.hooks.OnHalt != nil {
		m.hooks.OnHalt(HaltEvent[S, A]{
			Machine:  m.name,
			Steps:    m.steps,
			State:    m.state,
			Symbol:   symbol,
			Position: tape.Position(m.head),
			Cells:    len(m.mem),
		})
	}
}
