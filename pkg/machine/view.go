package machine

import "github.com/aretw0/turing/pkg/tape"

// Cell is a tape cell at a logical position.
type Cell[A comparable] struct {
	Position int `json:"position"`
	Symbol   A   `json:"symbol"`
}

// Snapshot is a copy of the observable machine state.
type Snapshot[S, A comparable] struct {
	Name   string    `json:"name,omitempty"`
	State  S         `json:"state"`
	Head   int       `json:"head"`
	Steps  int       `json:"steps"`
	Halted bool      `json:"halted"`
	Cells  []Cell[A] `json:"cells"`
}

// Name returns the label given with WithName.
func (m *Machine[S, A]) Name() string { return m.name }

// State returns the current control state.
func (m *Machine[S, A]) State() S { return m.state }

// Head returns the logical position of the head.
func (m *Machine[S, A]) Head() int { return tape.Position(m.head) }

// HeadIndex returns the storage index of the head.
func (m *Machine[S, A]) HeadIndex() int { return m.head }

// Len returns the number of allocated tape cells.
func (m *Machine[S, A]) Len() int { return len(m.mem) }

// Steps returns the number of transitions applied so far.
func (m *Machine[S, A]) Steps() int { return m.steps }

// Halted reports whether no rule matches the current state and symbol.
func (m *Machine[S, A]) Halted() bool {
	_, ok := m.Delta(m.state, m.mem[m.head])
	return !ok
}

// Symbol returns the symbol at a logical position. Positions never reached hold the blank.
func (m *Machine[S, A]) Symbol(position int) A {
	i := tape.Index(position)
	if i >= len(m.mem) {
		var blank A
		return blank
	}
	return m.mem[i]
}

// Cells returns every allocated cell, ordered by logical position.
func (m *Machine[S, A]) Cells() []Cell[A] {
	order := tape.Order(len(m.mem))
	cells := make([]Cell[A], len(order))
	for k, i := range order {
		cells[k] = Cell[A]{Position: tape.Position(i), Symbol: m.mem[i]}
	}
	return cells
}

// Rules returns a copy of the transition table.
func (m *Machine[S, A]) Rules() []Rule[S, A] {
	return append([]Rule[S, A](nil), m.rules...)
}

// Snapshot captures the observable state.
func (m *Machine[S, A]) Snapshot() Snapshot[S, A] {
	return Snapshot[S, A]{
		Name:   m.name,
		State:  m.state,
		Head:   m.Head(),
		Steps:  m.steps,
		Halted: m.Halted(),
		Cells:  m.Cells(),
	}
}
