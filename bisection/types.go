package bisection

import (
	"log/slog"

	"github.com/katalvlaran/rootfind/convergence"
)

// Result is the outcome of a bisection run.
type Result struct {
	// Root is the final midpoint c.
	Root float64

	// Residual is |f(Root)|.
	Residual float64

	// Lo, Hi bound the final bracket; Root == (Lo+Hi)/2.
	Lo, Hi float64

	// History holds the midpoint computed after each halving.
	History []float64

	// Iterations is the number of halvings (== len(History)).
	Iterations int

	// Status reports why the loop stopped.
	Status convergence.Status
}

// Converged reports whether the residual met the tolerance.
func (r Result) Converged() bool { return r.Status == convergence.Converged }

// Options configures a run.
//
// OnIterate – called after each halving with the new bracket, its midpoint
// and f at the midpoint.
type Options struct {
	OnIterate func(iter int, a, b, c, fc float64)
}

// Option represents a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnIterate: func(int, float64, float64, float64, float64) {},
	}
}

// WithOnIterate registers a progress hook. A nil fn is ignored.
func WithOnIterate(fn func(iter int, a, b, c, fc float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIterate = fn
		}
	}
}

// WithLogger emits one slog Debug record per halving.
func WithLogger(l *slog.Logger) Option {
	trace := convergence.Trace(l, "bisection")

	return func(o *Options) {
		prev := o.OnIterate
		o.OnIterate = func(iter int, a, b, c, fc float64) {
			prev(iter, a, b, c, fc)
			trace(iter,
				slog.Float64("a", a),
				slog.Float64("b", b),
				slog.Float64("c", c),
				slog.Float64("fc", fc),
			)
		}
	}
}
