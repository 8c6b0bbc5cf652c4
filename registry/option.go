package registry

import "log/slog"

// Option configures Registry behavior.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger enables debug logging for registry queries, including a
// generated correlation ID per call. Pass nil to disable logging (the
// default). The same logger is threaded through to the match package for
// each graph evaluated.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
