package metrics_test

import (
	"context"
	"testing"

	"github.com/aretw0/turing/internal/metrics"
	"github.com/aretw0/turing/pkg/catalog"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	p, err := catalog.Lookup("busy-beaver-2")
	require.NoError(t, err)

	m := p.New(machine.WithHooks(metrics.Hooks[string, catalog.Bit](c, p.Name)))
	_, _, err = m.Run(context.Background(), 0)
	require.NoError(t, err)
	m.Step()

	assert.Equal(t, float64(6), testutil.ToFloat64(c.Steps.WithLabelValues(p.Name)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.Halts.WithLabelValues(p.Name)))
	assert.Equal(t, float64(m.Len()), testutil.ToFloat64(c.Cells.WithLabelValues(p.Name)))
}

func TestNew_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	assert.Panics(t, func() { metrics.New(reg) }, "duplicate registration must panic")
}
