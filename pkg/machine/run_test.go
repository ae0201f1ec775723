package machine_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("Until Halt", func(t *testing.T) {
		m := machine.New(0, oscillator())
		n, status, err := m.Run(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, machine.Halted, status)
	})

	t.Run("Step Limit", func(t *testing.T) {
		m := machine.New(0, increment())
		n, status, err := m.Run(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, machine.Stepped, status)
		assert.Equal(t, 5, m.Head())
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m := machine.New(0, increment())
		n, _, err := m.Run(ctx, 0)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, n)
		assert.Equal(t, 0, m.Steps())
	})
}

func TestHooks(t *testing.T) {
	var steps []machine.StepEvent[int, int]
	var halts []machine.HaltEvent[int, int]

	m := machine.New(0, oscillator(),
		machine.WithName("osc"),
		machine.WithHooks(machine.Hooks[int, int]{
			OnStep: func(e machine.StepEvent[int, int]) { steps = append(steps, e) },
			OnHalt: func(e machine.HaltEvent[int, int]) { halts = append(halts, e) },
		}),
	)

	for i := 0; i < 5; i++ {
		m.Step()
	}

	require.Len(t, steps, 2)
	assert.Equal(t, machine.StepEvent[int, int]{
		Machine: "osc", Step: 1, From: 0, To: 1, Read: 0, Write: 1,
		Move: tape.Right, Position: 0, Head: 1, Cells: 3,
	}, steps[0])
	assert.Equal(t, tape.Left, steps[1].Move)
	assert.Equal(t, 1, steps[1].Position)
	assert.Equal(t, 0, steps[1].Head)

	require.Len(t, halts, 1, "halt is reported once")
	assert.Equal(t, machine.HaltEvent[int, int]{
		Machine: "osc", Steps: 2, State: 0, Symbol: 1, Position: 0, Cells: 3,
	}, halts[0])
}

func TestHooks_MismatchedTypes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	called := false
	m := machine.New(0, oscillator(),
		machine.WithLogger(logger),
		machine.WithHooks(machine.Hooks[string, int]{
			OnStep: func(machine.StepEvent[string, int]) { called = true },
		}),
	)
	m.Step()

	assert.False(t, called)
	assert.Contains(t, buf.String(), "mismatched type parameters")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := machine.New(0, oscillator(), machine.WithLogger(logger), machine.WithName("osc"))
	_, _, err := m.Run(context.Background(), 0)
	require.NoError(t, err)
	m.Step()

	out := buf.String()
	assert.Contains(t, out, "msg=step")
	assert.Contains(t, out, "machine=osc")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("msg=halted")))
}
