package session_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/turing/internal/metrics"
	"github.com/aretw0/turing/pkg/catalog"
	"github.com/aretw0/turing/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Lifecycle(t *testing.T) {
	ctx := context.Background()
	manager := session.NewManager()

	created, err := manager.Create("oscillator")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "oscillator", created.Program)
	assert.Equal(t, "0", created.Snapshot.State)
	assert.Equal(t, "0| 0 \n-| ^", created.Text)

	v, err := manager.Step(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "1", v.Snapshot.State)
	assert.Equal(t, 1, v.Snapshot.Head)
	assert.False(t, v.Snapshot.Halted)

	v, err = manager.Step(ctx, created.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Snapshot.Steps, "stepping stops at the halt")
	assert.True(t, v.Snapshot.Halted)

	got, err := manager.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, v.Snapshot, got.Snapshot)

	require.NoError(t, manager.Delete(ctx, created.ID))
	_, err = manager.Get(ctx, created.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.ErrorIs(t, manager.Delete(ctx, created.ID), session.ErrSessionNotFound)
}

func TestManager_UnknownProgram(t *testing.T) {
	_, err := session.NewManager().Create("nope")
	assert.ErrorIs(t, err, catalog.ErrProgramNotFound)
}

func TestManager_NotFound(t *testing.T) {
	ctx := context.Background()
	manager := session.NewManager()

	_, err := manager.Step(ctx, "missing", 1)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = manager.Run(ctx, "missing", 1)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManager_Run(t *testing.T) {
	ctx := context.Background()
	manager := session.NewManager()

	bb, err := manager.Create("busy-beaver-3")
	require.NoError(t, err)
	v, err := manager.Run(ctx, bb.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 14, v.Snapshot.Steps)
	assert.True(t, v.Snapshot.Halted)
	assert.Equal(t, "H", v.Snapshot.State)

	inc, err := manager.Create("increment")
	require.NoError(t, err)
	v, err = manager.Run(ctx, inc.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, v.Snapshot.Steps)
	assert.Equal(t, 25, v.Snapshot.Head)
}

func TestManager_RunCancelled(t *testing.T) {
	manager := session.NewManager()
	inc, err := manager.Create("increment")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = manager.Run(ctx, inc.ID, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

// cancelAfter is a context whose Err starts reporting context.Canceled after
// the given number of calls.
type cancelAfter struct {
	context.Context
	calls int
}

func (c *cancelAfter) Err() error {
	if c.calls <= 0 {
		return context.Canceled
	}
	c.calls--
	return nil
}

func TestManager_StepHonoursContext(t *testing.T) {
	manager := session.NewManager()
	inc, err := manager.Create("increment")
	require.NoError(t, err)

	// One check before the lock is taken, then one per transition.
	ctx := &cancelAfter{Context: context.Background(), calls: 5}
	_, err = manager.Step(ctx, inc.ID, 1<<40)
	assert.ErrorIs(t, err, context.Canceled)

	v, err := manager.Get(context.Background(), inc.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Snapshot.Steps)
}

func TestManager_StepIsBounded(t *testing.T) {
	manager := session.NewManager()
	inc, err := manager.Create("increment")
	require.NoError(t, err)

	v, err := manager.Step(context.Background(), inc.ID, 1<<40)
	require.NoError(t, err)
	assert.Equal(t, session.MaxStepsPerRequest, v.Snapshot.Steps)
	assert.False(t, v.Snapshot.Halted)
}

func TestManager_List(t *testing.T) {
	ctx := context.Background()
	manager := session.NewManager()

	a, err := manager.Create("oscillator")
	require.NoError(t, err)
	b, err := manager.Create("increment")
	require.NoError(t, err)

	views, err := manager.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	ids := []string{views[0].ID, views[1].ID}
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)
}

func TestManager_ConcurrentSteps(t *testing.T) {
	ctx := context.Background()
	manager := session.NewManager()

	inc, err := manager.Create("increment")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := manager.Step(ctx, inc.ID, 5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	v, err := manager.Get(ctx, inc.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, v.Snapshot.Steps)
	assert.Equal(t, 100, v.Snapshot.Head)
}

func TestManager_Metrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)
	manager := session.NewManager(session.WithMetrics(c))

	v, err := manager.Create("busy-beaver-2")
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(c.Machines))

	_, err = manager.Run(ctx, v.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, float64(6), testutil.ToFloat64(c.Steps.WithLabelValues("busy-beaver-2")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.Halts.WithLabelValues("busy-beaver-2")))

	require.NoError(t, manager.Delete(ctx, v.ID))
	assert.Equal(t, float64(0), testutil.ToFloat64(c.Machines))
}
