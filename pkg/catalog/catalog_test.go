package catalog_test

import (
	"context"
	"testing"

	"github.com/aretw0/turing/pkg/catalog"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ones(m *machine.Machine[string, catalog.Bit]) int {
	n := 0
	for _, c := range m.Cells() {
		if c.Symbol == catalog.One {
			n++
		}
	}
	return n
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"busy-beaver-2", "busy-beaver-3", "increment", "oscillator"}, catalog.Names())
	assert.Contains(t, catalog.Names(), catalog.Default)
}

func TestLookup_NotFound(t *testing.T) {
	_, err := catalog.Lookup("nope")
	assert.ErrorIs(t, err, catalog.ErrProgramNotFound)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	p, err := catalog.Lookup("oscillator")
	require.NoError(t, err)
	p.Rules[0].Write = catalog.Zero

	again, err := catalog.Lookup("oscillator")
	require.NoError(t, err)
	assert.Equal(t, catalog.One, again.Rules[0].Write)
}

func TestPrograms_Run(t *testing.T) {
	tests := []struct {
		name      string
		steps     int
		ones      int
		state     string
		halts     bool
		stepLimit int
	}{
		{name: "busy-beaver-2", steps: 6, ones: 4, state: "H", halts: true},
		{name: "busy-beaver-3", steps: 14, ones: 6, state: "H", halts: true},
		{name: "oscillator", steps: 2, ones: 2, state: "0", halts: true},
		{name: "increment", steps: 8, ones: 8, state: "0", halts: false, stepLimit: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := catalog.Lookup(tt.name)
			require.NoError(t, err)

			m := p.New()
			n, status, err := m.Run(context.Background(), tt.stepLimit)
			require.NoError(t, err)

			assert.Equal(t, tt.steps, n)
			assert.Equal(t, tt.ones, ones(m))
			assert.Equal(t, tt.state, m.State())
			assert.Equal(t, tt.halts, status == machine.Halted)
			assert.Equal(t, tt.name, m.Name())
		})
	}
}

func TestProgram_States(t *testing.T) {
	p, err := catalog.Lookup("busy-beaver-3")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "H", "C"}, p.States())
}

func TestParseBit(t *testing.T) {
	b, err := catalog.ParseBit("1")
	require.NoError(t, err)
	assert.Equal(t, catalog.One, b)
	assert.Equal(t, "0", catalog.Zero.String())

	_, err = catalog.ParseBit("2")
	assert.Error(t, err)
}
