package dsl

import (
	"testing"

	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Oscillator(t *testing.T) {
	b := New[int, int]()

	b.On(0, 0).Write(1).Right().Goto(1)
	b.On(1, 0).Write(1).Left().Goto(0)

	rules, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []machine.Rule[int, int]{
		{State: 0, Read: 0, Write: 1, Move: tape.Right, Next: 1},
		{State: 1, Read: 0, Write: 1, Move: tape.Left, Next: 0},
	}, rules)
}

func TestBuilder_Defaults(t *testing.T) {
	b := New[string, rune]()
	r := b.On("scan", 'x').Build()

	assert.Equal(t, 'x', r.Write, "write defaults to the read symbol")
	assert.Equal(t, tape.Stop, r.Move)
	assert.Equal(t, "scan", r.Next, "next defaults to the current state")
}

func TestBuilder_PreservesOrder(t *testing.T) {
	b := New[string, rune]()
	b.On("a", 'x').Write('1').Goto("first")
	b.On("a", 'y').Goto("other")
	b.On("a", 'x').Write('2').Goto("second")

	rules := b.MustBuild()
	require.Len(t, rules, 3)

	m := machine.New("a", rules)
	r, ok := m.Delta("a", 'x')
	require.True(t, ok)
	assert.Equal(t, "first", r.Next)
}

func TestBuilder_InvalidMovement(t *testing.T) {
	b := New[int, int]()
	b.On(0, 0).Move(tape.Movement(12))

	_, err := b.Build()
	assert.ErrorIs(t, err, machine.ErrInvalidRule)
	assert.Panics(t, func() { b.MustBuild() })
}

func TestBuilder_Empty(t *testing.T) {
	rules, err := New[int, int]().Build()
	require.NoError(t, err)
	assert.Empty(t, rules)
}
