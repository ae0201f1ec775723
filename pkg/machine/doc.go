/*
Package machine implements a single-tape Turing machine over caller-defined state and
symbol types.

A Machine is driven by an ordered table of quintuples

	(state, read) -> (write, move, next)

and advances one transition per call to Step. The tape is bi-infinite: it is stored in a
slice addressed through package tape and grows on demand, filling new cells with the zero
value of the symbol type (the blank).

# Halting

There is no halt state. When no rule matches the current (state, symbol) pair, Step leaves
the machine untouched and returns Halted; every later call does the same. Callers that do
not care can ignore the returned Status.

# Usage

	rules := []machine.Rule[int, int]{
		{State: 0, Read: 0, Write: 1, Move: tape.Right, Next: 1},
		{State: 1, Read: 0, Write: 1, Move: tape.Left, Next: 0},
	}
	m := machine.New(0, rules)
	for m.Step() == machine.Stepped {
	}

A Machine is not safe for concurrent use.
*/
package machine
