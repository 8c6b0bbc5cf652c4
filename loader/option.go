package loader

import "log/slog"

// Adapter parses JSON-with-comments data into world.World and story.Graph
// values. It holds no mutable state beyond its configuration, so a single
// Adapter is safe for concurrent Load* calls.
type Adapter struct {
	strictJSON bool
	logger     *slog.Logger
}

// ParseOption configures an Adapter.
type ParseOption func(*Adapter)

// NewAdapter returns an Adapter with the given options.
func NewAdapter(opts ...ParseOption) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithStrictJSON configures whether the Adapter requires strict JSON (no
// comments or trailing commas). Default is false: input is preprocessed
// with jsonc before parsing.
func WithStrictJSON(strict bool) ParseOption {
	return func(a *Adapter) {
		a.strictJSON = strict
	}
}

// WithLogger enables debug logging for load operations. Pass nil to
// disable logging (the default).
func WithLogger(logger *slog.Logger) ParseOption {
	return func(a *Adapter) {
		a.logger = logger
	}
}
