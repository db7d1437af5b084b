package secant

import (
	"log/slog"

	"github.com/katalvlaran/rootfind/convergence"
)

// Pair is the two-point window after a step.
type Pair struct {
	X1 float64
	X2 float64
}

// Gap returns |X1 - X2|, the quantity compared with the tolerance.
func (p Pair) Gap() float64 {
	if p.X1 > p.X2 {
		return p.X1 - p.X2
	}

	return p.X2 - p.X1
}

// Result is the outcome of a secant run.
type Result struct {
	// Root is the latest estimate (X2 of the last pair).
	Root float64

	// Residual is |f(Root)|.
	Residual float64

	// History holds the starting pair followed by one pair per step.
	History []Pair

	// Iterations is the number of window shifts (len(History)-1).
	Iterations int

	// Status reports why the loop stopped.
	Status convergence.Status
}

// Converged reports whether both the step size and |f(Root)| met the tolerance.
func (r Result) Converged() bool { return r.Status == convergence.Converged }

// Options configures a run.
//
// OnIterate – called after each shift with the new window and the gradient
// that produced it.
type Options struct {
	OnIterate func(iter int, x1, x2, gradient float64)
}

// Option represents a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnIterate: func(int, float64, float64, float64) {},
	}
}

// WithOnIterate registers a progress hook. A nil fn is ignored.
func WithOnIterate(fn func(iter int, x1, x2, gradient float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIterate = fn
		}
	}
}

// WithLogger emits one slog Debug record per shift.
func WithLogger(l *slog.Logger) Option {
	trace := convergence.Trace(l, "secant")

	return func(o *Options) {
		prev := o.OnIterate
		o.OnIterate = func(iter int, x1, x2, gradient float64) {
			prev(iter, x1, x2, gradient)
			trace(iter,
				slog.Float64("x1", x1),
				slog.Float64("x2", x2),
				slog.Float64("gradient", gradient),
			)
		}
	}
}
