package search

import (
	"fmt"
	"log/slog"
)

// DefaultDepthLimit is the depth bound of DepthLimitedSearch unless overridden.
const DefaultDepthLimit = 10

// Option configures a Problem via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewProblem.
type Option func(*Options)

// Options holds parameters and callbacks of a Problem.
type Options struct {
	// DepthLimit bounds DepthLimitedSearch. Zero allows only the start node.
	DepthLimit int

	// OnExpand is called with every node right before its children are generated.
	OnExpand func(n Node)

	// Logger receives debug records for finished runs and deepening rounds.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - DepthLimit = DefaultDepthLimit
//   - a no-op OnExpand hook
//   - a discard logger.
func DefaultOptions() Options {
	return Options{
		DepthLimit: DefaultDepthLimit,
		OnExpand:   func(Node) {},
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithDepthLimit sets the depth-limited search bound.
//
//	d >= 0: nodes at depth d are cut off
//	d < 0:  invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
