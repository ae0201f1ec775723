package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/metrics"
	"github.com/aretw0/turing/pkg/catalog"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/render"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session ID is unknown.
var ErrSessionNotFound = errors.New("session not found")

// MaxStepsPerRequest bounds a single Step or Run call.
const MaxStepsPerRequest = 1_000_000

// Machine is the machine type held by sessions.
type Machine = machine.Machine[string, catalog.Bit]

// View is the observable state of a session. Text is the two-line tape view.
type View struct {
	ID       string                                `json:"id"`
	Program  string                                `json:"program"`
	Created  time.Time                             `json:"created"`
	Snapshot machine.Snapshot[string, catalog.Bit] `json:"snapshot"`
	Text     string                                `json:"text"`
}

// entry holds a machine and the mutex guarding it.
type entry struct {
	mu      sync.Mutex
	id      string
	program string
	created time.Time
	machine *Machine
	deleted bool
}

func (e *entry) view() View {
	snap := e.machine.Snapshot()
	return View{
		ID:       e.id,
		Program:  e.program,
		Created:  e.created,
		Snapshot: snap,
		Text:     render.Text(snap),
	}
}

// Manager orchestrates session access, ensuring safe concurrent operations.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	logger  *slog.Logger
	metrics *metrics.Collectors
	newID   func() string
	now     func() time.Time
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager and the machines it creates.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithMetrics records machine activity into c.
func WithMetrics(c *metrics.Collectors) Option {
	return func(m *Manager) {
		m.metrics = c
	}
}

// NewManager creates an empty Session Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]*entry),
		logger:   logging.NewNop(), // Default to no-op
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a new machine running the named catalog program.
func (m *Manager) Create(program string) (View, error) {
	p, err := catalog.Lookup(program)
	if err != nil {
		return View{}, err
	}

	id := m.newID()
	opts := []machine.Option{
		machine.WithName(p.Name),
		machine.WithLogger(m.logger.With("session_id", id)),
	}
	if m.metrics != nil {
		opts = append(opts, machine.WithHooks(metrics.Hooks[string, catalog.Bit](m.metrics, p.Name)))
	}

	e := &entry{
		id:      id,
		program: p.Name,
		created: m.now(),
		machine: p.New(opts...),
	}

	m.mu.Lock()
	m.sessions[id] = e
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.Machines.Inc()
	}
	m.logger.Info("session created", "session_id", id, "program", p.Name)

	return e.view(), nil
}

// Get returns the current view of a session.
func (m *Manager) Get(ctx context.Context, id string) (View, error) {
	var v View
	err := m.withLock(ctx, id, func(e *entry) error {
		v = e.view()
		return nil
	})
	return v, err
}

// Step applies up to n transitions (at least one, at most MaxStepsPerRequest) and
// returns the resulting view. Stepping a halted machine is not an error; the view is
// simply unchanged.
func (m *Manager) Step(ctx context.Context, id string, n int) (View, error) {
	n = min(max(n, 1), MaxStepsPerRequest)
	var v View
	err := m.withLock(ctx, id, func(e *entry) error {
		if _, _, err := e.machine.Run(ctx, n); err != nil {
			return fmt.Errorf("step interrupted: %w", err)
		}
		v = e.view()
		return nil
	})
	return v, err
}

// Run steps a session until it halts, maxSteps transitions were applied or ctx is done.
// A maxSteps outside 1..MaxStepsPerRequest means MaxStepsPerRequest.
func (m *Manager) Run(ctx context.Context, id string, maxSteps int) (View, error) {
	if maxSteps <= 0 || maxSteps > MaxStepsPerRequest {
		maxSteps = MaxStepsPerRequest
	}
	var v View
	err := m.withLock(ctx, id, func(e *entry) error {
		if _, _, err := e.machine.Run(ctx, maxSteps); err != nil {
			return fmt.Errorf("run interrupted: %w", err)
		}
		v = e.view()
		return nil
	})
	return v, err
}

// Delete removes a session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	err := m.withLock(ctx, id, func(e *entry) error {
		e.deleted = true
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}

	if m.metrics != nil {
		m.metrics.Machines.Dec()
	}
	m.logger.Info("session deleted", "session_id", id)
	return nil
}

// List returns the views of all sessions, oldest first.
func (m *Manager) List(ctx context.Context) ([]View, error) {
	m.mu.RLock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	views := make([]View, 0, len(ids))
	for _, id := range ids {
		v, err := m.Get(ctx, id)
		if errors.Is(err, ErrSessionNotFound) {
			continue // deleted meanwhile
		}
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	sort.Slice(views, func(i, j int) bool {
		if views[i].Created.Equal(views[j].Created) {
			return views[i].ID < views[j].ID
		}
		return views[i].Created.Before(views[j].Created)
	})
	return views, nil
}

// withLock executes fn while holding the lock for the session.
func (m *Manager) withLock(ctx context.Context, id string, fn func(*entry) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return fn(e)
}
