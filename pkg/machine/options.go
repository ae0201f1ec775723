package machine

import "log/slog"

type config struct {
	name   string
	logger *slog.Logger
	hooks  any
}

// Option configures a Machine.
type Option func(*config)

// WithName labels the machine in logs and events.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the structured logger. Steps are logged at Debug, the first halt at Info.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks registers observability callbacks. The type parameters must match the
// machine's, otherwise the hooks are ignored and a warning is logged.
func WithHooks[S, A comparable](hooks Hooks[S, A]) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}
