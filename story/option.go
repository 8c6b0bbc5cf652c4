package story

import "log/slog"

// Option configures Graph construction behavior.
type Option func(*graphConfig)

type graphConfig struct {
	logger *slog.Logger
}

// WithLogger enables debug logging for graph construction operations (add,
// connect, connect_weak). Pass nil to disable logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *graphConfig) {
		cfg.logger = logger
	}
}
