package machine

import "github.com/aretw0/turing/pkg/tape"

// Status is the outcome of a call to Step.
type Status int

const (
	// Stepped means a rule matched and was applied.
	Stepped Status = iota
	// Halted means no rule matched; the machine was left unchanged.
	Halted
)

func (s Status) String() string {
	if s == Halted {
		return "halted"
	}
	return "stepped"
}

// StepEvent describes one applied transition.
type StepEvent[S, A comparable] struct {
	Machine string        `json:"machine,omitempty"`
	Step    int           `json:"step"`
	From    S             `json:"from"`
	To      S             `json:"to"`
	Read    A             `json:"read"`
	Write   A             `json:"write"`
	Move    tape.Movement `json:"move"`
	// Position is the logical head position before the move, Head the one after.
	Position int `json:"position"`
	Head     int `json:"head"`
	Cells    int `json:"cells"`
}

// HaltEvent describes the first step attempt that found no matching rule.
type HaltEvent[S, A comparable] struct {
	Machine  string `json:"machine,omitempty"`
	Steps    int    `json:"steps"`
	State    S      `json:"state"`
	Symbol   A      `json:"symbol"`
	Position int    `json:"position"`
	Cells    int    `json:"cells"`
}

// Hooks are observability callbacks invoked synchronously from Step.
type Hooks[S, A comparable] struct {
	OnStep func(StepEvent[S, A])
	OnHalt func(HaltEvent[S, A])
}
