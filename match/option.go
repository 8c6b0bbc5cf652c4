package match

import "log/slog"

// Option configures alias matching.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger enables debug logging for the matching stages. Pass nil to
// disable logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
