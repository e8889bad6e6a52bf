package statecraft

import (
	"log/slog"
	"os"

	"github.com/comalice/statecraft/internal/interp"
)

// Option configures a Session at construction, following the functional
// options pattern the teacher uses throughout its core package.
type Option func(*interp.Options)

// WithLogger routes the session's structured diagnostics (transition and
// eventless-search logs at Debug, suppressed-parallel-conflict and
// fixpoint-exhaustion logs at Warn) to logger instead of slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *interp.Options) { o.Logger = logger }
}

// WithLogLevel sets the minimum level the session's default logger emits,
// when no explicit WithLogger is supplied. It has no effect alongside
// WithLogger, whose handler controls its own level.
func WithLogLevel(level slog.Level) Option {
	return func(o *interp.Options) {
		if o.Logger == nil {
			o.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		}
	}
}

// WithInitial overrides the root configuration's default entry point with
// path, resolved the same way a compound state's own Initial is (§6.2).
func WithInitial(path string) Option {
	return func(o *interp.Options) { o.InitialOverride = path }
}

// WithDatamodel selects the provider used to evaluate guards and execute
// action content (§6.3). Defaults to NewDefaultProvider, the stdlib-only
// evaluator, when omitted.
func WithDatamodel(p Provider) Option {
	return func(o *interp.Options) { o.Provider = p }
}

// WithFixpointBound overrides the eventless-closure iteration cap (§4.4,
// §8). The default is interp.DefaultFixpointBound (1000).
func WithFixpointBound(n int) Option {
	return func(o *interp.Options) { o.FixpointBound = n }
}
