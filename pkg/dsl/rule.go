package dsl

import (
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/tape"
)

const defaultMove = tape.Stop

// RuleBuilder configures the right-hand side of a single rule.
type RuleBuilder[S, A comparable] struct {
	rule machine.Rule[S, A]
}

// Write sets the symbol written under the head.
func (r *RuleBuilder[S, A]) Write(symbol A) *RuleBuilder[S, A] {
	r.rule.Write = symbol
	return r
}

// Move sets the head movement.
func (r *RuleBuilder[S, A]) Move(m tape.Movement) *RuleBuilder[S, A] {
	r.rule.Move = m
	return r
}

// Left moves the head one cell to the left.
func (r *RuleBuilder[S, A]) Left() *RuleBuilder[S, A] { return r.Move(tape.Left) }

// Right moves the head one cell to the right.
func (r *RuleBuilder[S, A]) Right() *RuleBuilder[S, A] { return r.Move(tape.Right) }

// Stop keeps the head in place.
func (r *RuleBuilder[S, A]) Stop() *RuleBuilder[S, A] { return r.Move(tape.Stop) }

// Goto sets the next control state.
func (r *RuleBuilder[S, A]) Goto(next S) *RuleBuilder[S, A] {
	r.rule.Next = next
	return r
}

// Build returns the rule as configured so far.
func (r *RuleBuilder[S, A]) Build() machine.Rule[S, A] {
	return r.rule
}
