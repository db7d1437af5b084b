package bisection

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/convergence"
)

// IsPositive is the sign test used for bracketing: zero counts as positive.
func IsPositive(v float64) bool {
	return v >= 0
}

// Brackets reports whether [a, b] satisfies the precondition of Solve.
func Brackets(f func(float64) float64, a, b float64) bool {
	return validate(f, a, b) == nil
}

// Solve bisects [a, b] until |f(c)| ≤ tolerance or the cap is reached.
//
// Steps:
//  1. Validate a ≤ b (finite) and the sign change.
//  2. c = (a+b)/2.
//  3. While |f(c)| > tol and fewer than MaxIterations halvings:
//     keep the half whose endpoints still differ in sign, recompute c, append c.
//
// Complexity: O(MaxIterations) evaluations; the bracket width halves every step.
func Solve(f func(float64) float64, a, b float64, policy convergence.Policy, opts ...Option) (Result, error) {
	if err := policy.Validate(); err != nil {
		return Result{}, fmt.Errorf("bisection: %w", err)
	}
	if err := validate(f, a, b); err != nil {
		return Result{}, fmt.Errorf("bisection: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fa := f(a)
	c := (a + b) / 2
	fc := f(c)
	history := make([]float64, 0, policy.HistoryCap())

	res := Result{}
	for iter := 0; ; iter++ {
		res = Result{Root: c, Residual: math.Abs(fc), Lo: a, Hi: b, History: history, Iterations: iter}

		if math.IsNaN(fc) || math.IsInf(fc, 0) {
			res.Status = convergence.Failed
			return res, fmt.Errorf("bisection: f(%v)=%v: %w", c, fc, convergence.ErrNonConvergence)
		}
		if policy.Within(res.Residual) {
			res.Status = convergence.Converged
			return res, nil
		}
		if policy.Exhausted(iter) {
			res.Status = convergence.IterationLimit
			if err := policy.Finish(res.Status); err != nil {
				return res, fmt.Errorf("bisection: %w", err)
			}
			return res, nil
		}

		if IsPositive(fa) == IsPositive(fc) {
			a, fa = c, fc
		} else {
			b = c
		}
		c = (a + b) / 2
		fc = f(c)
		history = append(history, c)
		o.OnIterate(iter, a, b, c, fc)
	}
}

// validate checks the interval before any halving.
func validate(f func(float64) float64, a, b float64) error {
	if f == nil {
		return fmt.Errorf("nil function: %w", convergence.ErrInvalidInput)
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return fmt.Errorf("a=%v b=%v: %w", a, b, convergence.ErrInvalidInput)
	}
	if a > b {
		return fmt.Errorf("a=%v > b=%v: %w", a, b, convergence.ErrInvalidInterval)
	}
	fa, fb := f(a), f(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return fmt.Errorf("f(a)=%v f(b)=%v: %w", fa, fb, convergence.ErrInvalidInterval)
	}
	if IsPositive(fa) == IsPositive(fb) {
		return fmt.Errorf("f(%v)=%v and f(%v)=%v share a sign: %w", a, fa, b, fb, convergence.ErrInvalidInterval)
	}

	return nil
}
