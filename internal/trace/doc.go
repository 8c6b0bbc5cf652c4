// Package trace provides optional debug logging helpers for the loom
// library.
//
// This package is an internal utility for developer observability,
// distinct from error returns (which report system and domain failures to
// the caller).
//
// # Internal Package
//
// This package is internal to the loom module and is not importable by
// external consumers per Go's internal/ package semantics. It coordinates
// logging conventions across library packages (story, match, registry,
// and loader).
//
// # Design Principles
//
//   - Near-zero cost when disabled: when the logger is nil, overhead is a
//     single nil check (~2ns); when the logger is non-nil but the level is
//     disabled, overhead adds a level test (~3-4ns).
//   - Stdlib only: uses [log/slog] (Go 1.21+), preserving dependency
//     hygiene.
//   - Logger injection: loggers are passed via functional options at API
//     boundaries (e.g. story.WithLogger, match.WithLogger), never stored in
//     globals or read from the environment.
//
// # Usage Patterns
//
//   - [Begin]/[Op.End]: operation boundaries (start/end of public API
//     calls). Use for wrapping top-level functions with automatic duration
//     measurement.
//   - [Debug]: simple, pre-computed attributes at points that are not
//     operation boundaries, such as a weak-edge connect that never fails
//     and so has no End call to pair with.
//
// # Context Handling
//
// Logging functions accept a context parameter and pass it through to the
// underlying [log/slog.Logger]. The Op runner ([Begin]/[Op.End])
// additionally:
//   - includes "request_id" if present in context (via [WithRequestID])
//   - checks context cancellation for a "ctx_err" attribute
//
// # Op Runner
//
// The [Op] type provides consistent operation boundary logging with
// automatic duration measurement and cancellation handling. [Begin] returns
// nil when logging is disabled (nil logger or level below Debug), achieving
// near-zero overhead. All [Op] methods are safe to call on nil.
//
//	func (r *Registry) Query(w world.World) []StoryCandidate {
//	    ctx := trace.WithRequestID(context.Background(), uuid.NewString())
//	    op := trace.Begin(ctx, r.cfg.logger, "loom.registry.query")
//
//	    out := r.evaluate(w)
//
//	    op.End(nil, slog.Int("candidates", len(out)))
//	    return out
//	}
//
// The Op runner automatically logs:
//   - "op": operation name
//   - "request_id": if present in context (via [WithRequestID])
//   - "elapsed_ms": elapsed time in milliseconds (int64, machine-parseable)
//   - "duration": elapsed time as [time.Duration] (human-readable)
//   - "ctx_err": context error message if cancelled
//   - "error": error message if err != nil
//
// # Operation Names
//
// Operation names follow the format loom.<package>.<operation>:
//   - loom.story.add
//   - loom.match.candidates
//   - loom.registry.query
//   - loom.loader.load_world
//
// Operation names are implementation details and may change without
// notice. Tests should not depend on the exact set of operation names.
package trace
