// Package metrics exposes machine activity as Prometheus collectors.
package metrics

import (
	"github.com/aretw0/turing/pkg/machine"
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors groups the machine metrics.
type Collectors struct {
	Steps    *prometheus.CounterVec
	Halts    *prometheus.CounterVec
	Cells    *prometheus.GaugeVec
	Machines prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_steps_total",
				Help: "Total number of transitions applied",
			},
			[]string{"program"},
		),
		Halts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_halts_total",
				Help: "Total number of machines that reached a state with no matching rule",
			},
			[]string{"program"},
		),
		Cells: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "turing_tape_cells",
				Help: "Allocated tape cells of the most recently stepped machine",
			},
			[]string{"program"},
		),
		Machines: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "turing_machines",
				Help: "Number of live machine sessions",
			},
		),
	}
	reg.MustRegister(c.Steps, c.Halts, c.Cells, c.Machines)
	return c
}

// Hooks returns machine hooks that record into c, labelled with program.
func Hooks[S, A comparable](c *Collectors, program string) machine.Hooks[S, A] {
	steps := c.Steps.WithLabelValues(program)
	halts := c.Halts.WithLabelValues(program)
	cells := c.Cells.WithLabelValues(program)

	return machine.Hooks[S, A]{
		OnStep: func(e machine.StepEvent[S, A]) {
			steps.Inc()
			cells.Set(float64(e.Cells))
		},
		OnHalt: func(e machine.HaltEvent[S, A]) {
			halts.Inc()
			cells.Set(float64(e.Cells))
		},
	}
}
