package newton

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/rootfind/convergence"
	"github.com/katalvlaran/rootfind/deriv"
)

// DefaultMinSlope is the magnitude at or below which a slope is treated as zero.
const DefaultMinSlope = 1e-12

const (
	panicStepInvalid     = "newton: WithStep: h must be finite and positive"
	panicMinSlopeInvalid = "newton: WithMinSlope: s must be finite and non-negative"
)

// Result is the outcome of a Newton-Raphson run.
type Result struct {
	// Root is the last iterate.
	Root float64

	// Residual is |f(Root)|.
	Residual float64

	// History holds x0 followed by every update, in order.
	History []float64

	// Iterations is the number of updates performed (len(History)-1).
	Iterations int

	// Status reports why the loop stopped.
	Status convergence.Status
}

// Converged reports whether the run met the tolerance.
func (r Result) Converged() bool { return r.Status == convergence.Converged }

// Options configures a run. Build with DefaultOptions and Option setters.
//
// Step      – finite-difference step h (default deriv.DefaultStep).
// Formula   – stencil (default deriv.Forward).
// MinSlope  – slopes with |d| ≤ MinSlope abort with ErrDivisionByZero.
// OnIterate – called once per update, before x moves, with the current
//
//	iterate, f(x) and slope. Must not retain or mutate solver state.
type Options struct {
	Step      float64
	Formula   deriv.Formula
	MinSlope  float64
	OnIterate func(iter int, x, fx, slope float64)
}

// Option represents a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns forward differences with h = 1e-6 and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Step:      deriv.DefaultStep,
		Formula:   deriv.Forward,
		MinSlope:  DefaultMinSlope,
		OnIterate: func(int, float64, float64, float64) {},
	}
}

// WithStep overrides the finite-difference step.
func WithStep(h float64) Option {
	if !deriv.ValidStep(h) {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.Step = h }
}

// WithFormula selects the finite-difference stencil.
func WithFormula(f deriv.Formula) Option {
	return func(o *Options) { o.Formula = f }
}

// WithMinSlope overrides the near-zero slope threshold.
func WithMinSlope(s float64) Option {
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		panic(panicMinSlopeInvalid)
	}

	return func(o *Options) { o.MinSlope = s }
}

// WithOnIterate registers a progress hook. A nil fn is ignored.
func WithOnIterate(fn func(iter int, x, fx, slope float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIterate = fn
		}
	}
}

// WithLogger emits one slog Debug record per update, in addition to any
// hook already registered.
func WithLogger(l *slog.Logger) Option {
	trace := convergence.Trace(l, "newton")

	return func(o *Options) {
		prev := o.OnIterate
		o.OnIterate = func(iter int, x, fx, slope float64) {
			prev(iter, x, fx, slope)
			trace(iter,
				slog.Float64("x", x),
				slog.Float64("fx", fx),
				slog.Float64("slope", slope),
			)
		}
	}
}
