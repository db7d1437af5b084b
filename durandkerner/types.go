package durandkerner

import (
	"log/slog"

	"github.com/katalvlaran/rootfind/convergence"
)

// DefaultPowerBase is the classic seed base 0.4+0.9i: neither real nor of
// unit modulus, so its powers are distinct and not collinear.
const DefaultPowerBase = complex(0.4, 0.9)

// Seeder produces deg starting estimates. Returned slices are owned by the
// solver.
type Seeder func(deg int) []complex128

// ImaginaryAxisSeeds places the seeds at i, 2i, …, deg·i.
func ImaginaryAxisSeeds(deg int) []complex128 {
	out := make([]complex128, deg)
	for k := range out {
		out[k] = complex(0, float64(k+1))
	}

	return out
}

// PowerSeeds returns a Seeder producing base⁰, base¹, …, base^(deg-1).
func PowerSeeds(base complex128) Seeder {
	return func(deg int) []complex128 {
		out := make([]complex128, deg)
		z := complex(1, 0)
		for k := range out {
			out[k] = z
			z *= base
		}

		return out
	}
}

// FixedSeeds returns a Seeder that always yields a copy of seeds; the solver
// rejects it when len(seeds) differs from the requested degree.
func FixedSeeds(seeds ...complex128) Seeder {
	return func(int) []complex128 {
		out := make([]complex128, len(seeds))
		copy(out, seeds)

		return out
	}
}

// Result is the outcome of a Durand-Kerner run.
type Result struct {
	// Roots holds the final estimates in seed order.
	Roots []complex128

	// Residuals holds |f(Roots[k])|.
	Residuals []float64

	// History holds the seeds followed by the estimates after each round.
	History [][]complex128

	// Iterations is the number of completed rounds (len(History)-1).
	Iterations int

	// Status reports the outcome of the final residual check.
	Status convergence.Status
}

// Converged reports whether every residual met the tolerance.
func (r Result) Converged() bool { return r.Status == convergence.Converged }

// MaxResidual returns the largest residual, or 0 for an empty result.
func (r Result) MaxResidual() float64 {
	var m float64
	for _, v := range r.Residuals {
		if v > m {
			m = v
		}
	}

	return m
}

// Options configures a run.
//
// Seeder    – initial estimate generator (default ImaginaryAxisSeeds).
// OnIterate – called after each round with the new estimates. The slice is
// the one stored in History; it must not be modified.
type Options struct {
	Seeder    Seeder
	OnIterate func(round int, estimates []complex128)
}

// Option represents a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns imaginary-axis seeds and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Seeder:    ImaginaryAxisSeeds,
		OnIterate: func(int, []complex128) {},
	}
}

// WithSeeder replaces the seed generator. A nil seeder is ignored.
func WithSeeder(s Seeder) Option {
	return func(o *Options) {
		if s != nil {
			o.Seeder = s
		}
	}
}

// WithSeeds fixes the seeds explicitly.
func WithSeeds(seeds ...complex128) Option {
	return WithSeeder(FixedSeeds(seeds...))
}

// WithOnIterate registers a progress hook. A nil fn is ignored.
func WithOnIterate(fn func(round int, estimates []complex128)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIterate = fn
		}
	}
}

// WithLogger emits one slog Debug record per round.
func WithLogger(l *slog.Logger) Option {
	trace := convergence.Trace(l, "durand-kerner")

	return func(o *Options) {
		prev := o.OnIterate
		o.OnIterate = func(round int, estimates []complex128) {
			prev(round, estimates)
			trace(round, slog.Any("estimates", estimates))
		}
	}
}
