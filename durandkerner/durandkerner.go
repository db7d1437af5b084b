package durandkerner

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/rootfind/convergence"
	"github.com/katalvlaran/rootfind/poly"
)

// Solve runs exactly policy.MaxIterations() Durand-Kerner rounds on the
// monic degree-deg polynomial f.
//
// Complexity: O(MaxIterations · deg²) complex operations, deg evaluations
// of f per round; O(MaxIterations · deg) memory for History.
//
// On a mid-run error the Result carries the rounds completed so far.
func Solve(f func(complex128) complex128, deg int, policy convergence.Policy, opts ...Option) (Result, error) {
	if err := policy.Validate(); err != nil {
		return Result{}, fmt.Errorf("durandkerner: %w", err)
	}
	if f == nil {
		return Result{}, fmt.Errorf("durandkerner: nil function: %w", convergence.ErrInvalidInput)
	}
	if deg < 1 {
		return Result{}, fmt.Errorf("durandkerner: degree %d: %w", deg, convergence.ErrInvalidInput)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	x := o.Seeder(deg)
	if err := validateSeeds(x, deg); err != nil {
		return Result{}, fmt.Errorf("durandkerner: %w", err)
	}

	history := make([][]complex128, 1, policy.HistoryCap())
	history[0] = clone(x)

	res := Result{History: history}
	next := make([]complex128, deg)
	for round := 0; !policy.Exhausted(round); round++ {
		for k := range x {
			denom := differenceProduct(x, k)
			if denom == 0 {
				res.Roots, res.Iterations, res.Status = clone(x), round, convergence.Failed
				res.Residuals = residuals(f, x)
				return res, fmt.Errorf("durandkerner: round %d, estimate %d coincides with another: %w",
					round, k, convergence.ErrDivisionByZero)
			}
			next[k] = x[k] - f(x[k])/denom
			if cmplx.IsNaN(next[k]) || cmplx.IsInf(next[k]) {
				res.Roots, res.Iterations, res.Status = clone(x), round, convergence.Failed
				res.Residuals = residuals(f, x)
				return res, fmt.Errorf("durandkerner: round %d, estimate %d = %v: %w",
					round, k, next[k], convergence.ErrNonConvergence)
			}
		}
		x, next = next, x

		snapshot := clone(x)
		history = append(history, snapshot)
		res.History = history
		o.OnIterate(round, snapshot)
	}

	res.Roots = clone(x)
	res.Residuals = residuals(f, x)
	res.Iterations = len(history) - 1
	res.Status = convergence.Converged
	for _, r := range res.Residuals {
		if !policy.Within(r) {
			res.Status = convergence.IterationLimit
			break
		}
	}
	if err := policy.Finish(res.Status); err != nil {
		return res, fmt.Errorf("durandkerner: %w", err)
	}

	return res, nil
}

// SolvePolynomial runs Solve on p scaled to be monic; the degree is taken
// from p. A constant polynomial has no roots and is rejected.
func SolvePolynomial(p poly.Polynomial, policy convergence.Policy, opts ...Option) (Result, error) {
	if p.Degree() < 1 {
		return Result{}, fmt.Errorf("durandkerner: %q has no roots: %w", p.String(), convergence.ErrInvalidInput)
	}
	m := p.Monic()

	return Solve(m.EvalComplex, m.Degree(), policy, opts...)
}

// differenceProduct returns Π_{j≠k} (x_k - x_j); 1 for a single estimate.
func differenceProduct(x []complex128, k int) complex128 {
	prod := complex(1, 0)
	for j := range x {
		if j != k {
			prod *= x[k] - x[j]
		}
	}

	return prod
}

// validateSeeds checks count, finiteness and pairwise distinctness.
func validateSeeds(x []complex128, deg int) error {
	if len(x) != deg {
		return fmt.Errorf("seeder returned %d estimates for degree %d: %w", len(x), deg, convergence.ErrInvalidInput)
	}
	for i, z := range x {
		if cmplx.IsNaN(z) || cmplx.IsInf(z) {
			return fmt.Errorf("seed %d = %v: %w", i, z, convergence.ErrInvalidInput)
		}
		for j := 0; j < i; j++ {
			if x[j] == z {
				return fmt.Errorf("seeds %d and %d coincide at %v: %w", j, i, z, convergence.ErrDivisionByZero)
			}
		}
	}

	return nil
}

func residuals(f func(complex128) complex128, x []complex128) []float64 {
	out := make([]float64, len(x))
	for k, z := range x {
		r := cmplx.Abs(f(z))
		if math.IsNaN(r) {
			r = math.Inf(1)
		}
		out[k] = r
	}

	return out
}

func clone(x []complex128) []complex128 {
	out := make([]complex128, len(x))
	copy(out, x)

	return out
}
