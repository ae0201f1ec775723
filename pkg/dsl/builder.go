package dsl

import (
	"github.com/aretw0/turing/pkg/machine"
)

// Builder collects rules in declaration order.
type Builder[S, A comparable] struct {
	rules []*RuleBuilder[S, A]
}

// New creates an empty table builder.
func New[S, A comparable]() *Builder[S, A] {
	return &Builder[S, A]{}
}

// On starts a rule for the given state and read symbol.
func (b *Builder[S, A]) On(state S, read A) *RuleBuilder[S, A] {
	rb := &RuleBuilder[S, A]{
		rule: machine.Rule[S, A]{
			State: state,
			Read:  read,
			Write: read,
			Move:  defaultMove,
			Next:  state,
		},
	}
	b.rules = append(b.rules, rb)
	return rb
}

// Build returns the table, or machine.ErrInvalidRule if a rule has an undeclared movement.
func (b *Builder[S, A]) Build() ([]machine.Rule[S, A], error) {
	rules := make([]machine.Rule[S, A], 0, len(b.rules))
	for _, rb := range b.rules {
		rules = append(rules, rb.rule)
	}
	if err := machine.Validate(rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// MustBuild is like Build but panics on error. Meant for package-level tables.
func (b *Builder[S, A]) MustBuild() []machine.Rule[S, A] {
	rules, err := b.Build()
	if err != nil {
		panic(err)
	}
	return rules
}
