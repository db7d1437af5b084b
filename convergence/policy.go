// SPDX-License-Identifier: MIT

// Package convergence: immutable stopping policy. This file defines:
//   - documented defaults (single source of truth),
//   - Option / WithX constructors with strong validation (panic on nonsensical values),
//   - Policy accessors and the two stopping predicates used by every solver loop.
//
// Design goals:
//   - No global state: a Policy is a value, copied into each solver call.
//   - Every loop pairs the residual test (Within) with the cap test (Exhausted).
//   - Safe by construction: panic only on invalid parameters (programmer error).
package convergence

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the residual / step threshold below which a run converges.
	DefaultTolerance = 1e-5

	// DefaultMaxIterations caps every loop; it guarantees termination on divergent input.
	DefaultMaxIterations = 100

	// DefaultStrictLimit keeps the iteration cap a soft outcome (Status only).
	DefaultStrictLimit = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid     = "convergence: WithTolerance: tol must be finite and positive"
	panicMaxIterationsInvalid = "convergence: WithMaxIterations: n must be positive"
)

// Option mutates a Policy under construction.
type Option func(*Policy)

// Policy is the immutable {tolerance, max_iterations} pair consulted by every
// solver. Fields are unexported; build values with DefaultPolicy or NewPolicy.
// The zero Policy is invalid and rejected by Validate.
type Policy struct {
	tolerance     float64
	maxIterations int
	strictLimit   bool
}

// DefaultPolicy returns tolerance=1e-5, maxIterations=100, soft limit.
func DefaultPolicy() Policy {
	return Policy{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		strictLimit:   DefaultStrictLimit,
	}
}

// NewPolicy applies opts on top of DefaultPolicy.
func NewPolicy(opts ...Option) Policy {
	p := DefaultPolicy()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// With returns a copy of p with opts applied; p itself is left untouched.
func (p Policy) With(opts ...Option) Policy {
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// WithTolerance sets the convergence threshold.
//
// Panics when tol is NaN, ±Inf, zero or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(p *Policy) { p.tolerance = tol }
}

// WithMaxIterations sets the hard iteration cap. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(p *Policy) { p.maxIterations = n }
}

// WithStrictLimit makes solvers return ErrIterationLimit (alongside the
// best estimate and history) when the cap is reached without convergence.
func WithStrictLimit() Option {
	return func(p *Policy) { p.strictLimit = true }
}

// Tolerance returns the convergence threshold.
func (p Policy) Tolerance() float64 { return p.tolerance }

// MaxIterations returns the iteration cap.
func (p Policy) MaxIterations() int { return p.maxIterations }

// StrictLimit reports whether hitting the cap is surfaced as an error.
func (p Policy) StrictLimit() bool { return p.strictLimit }

// Validate rejects policies not produced by the constructors (e.g. Policy{}).
func (p Policy) Validate() error {
	if math.IsNaN(p.tolerance) || math.IsInf(p.tolerance, 0) || p.tolerance <= 0 {
		return fmt.Errorf("tolerance %g: %w", p.tolerance, ErrInvalidPolicy)
	}
	if p.maxIterations < 1 {
		return fmt.Errorf("max iterations %d: %w", p.maxIterations, ErrInvalidPolicy)
	}

	return nil
}

// Within reports whether a non-negative residual (or step size) satisfies the
// tolerance. NaN never satisfies it.
func (p Policy) Within(residual float64) bool {
	return residual <= p.tolerance
}

// Exhausted reports whether iteration index iter (0-based count of completed
// updates) has reached the cap.
func (p Policy) Exhausted(iter int) bool {
	return iter >= p.maxIterations
}

// Finish maps a terminal status to the error a solver returns for it:
// ErrIterationLimit or ErrStalled under a strict policy, nil otherwise.
func (p Policy) Finish(s Status) error {
	if !p.strictLimit {
		return nil
	}
	switch s {
	case IterationLimit:
		return ErrIterationLimit
	case Stalled:
		return ErrStalled
	}

	return nil
}

// HistoryCap returns the capacity a solver should preallocate for a history
// that may hold the initial state plus one entry per iteration.
func (p Policy) HistoryCap() int {
	// Large caps are not preallocated up front.
	const maxPrealloc = 1024
	if p.maxIterations >= maxPrealloc {
		return maxPrealloc
	}

	return p.maxIterations + 1
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	return fmt.Sprintf("Policy{tol=%g, maxIter=%d, strict=%t}", p.tolerance, p.maxIterations, p.strictLimit)
}
