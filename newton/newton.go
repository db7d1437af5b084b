package newton

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/convergence"
	"github.com/katalvlaran/rootfind/deriv"
)

// Solve runs Newton-Raphson on f from x0 under policy.
//
// Algorithm:
//  1. history = [x0].
//  2. Loop (iter = 0, 1, …):
//     fx = f(x); stop Converged if |fx| ≤ tol; stop IterationLimit if iter == cap.
//     d = finite-difference slope at x (f(x) reused); abort if |d| ≤ MinSlope.
//     x ← x - fx/d; append x.
//
// Complexity: O(MaxIterations) evaluations of f (two per update for Forward).
//
// On error the Result is still populated with the history accumulated so far.
func Solve(f func(float64) float64, x0 float64, policy convergence.Policy, opts ...Option) (Result, error) {
	if err := policy.Validate(); err != nil {
		return Result{}, fmt.Errorf("newton: %w", err)
	}
	if f == nil {
		return Result{}, fmt.Errorf("newton: nil function: %w", convergence.ErrInvalidInput)
	}
	if !isFinite(x0) {
		return Result{}, fmt.Errorf("newton: x0=%v: %w", x0, convergence.ErrInvalidInput)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	history := make([]float64, 1, policy.HistoryCap())
	history[0] = x0
	x := x0

	for iter := 0; ; iter++ {
		fx := f(x)
		res := Result{Root: x, Residual: math.Abs(fx), History: history, Iterations: iter}

		if !isFinite(fx) {
			res.Status = convergence.Failed
			return res, fmt.Errorf("newton: f(%v)=%v: %w", x, fx, convergence.ErrNonConvergence)
		}
		if policy.Within(res.Residual) {
			res.Status = convergence.Converged
			return res, nil
		}
		if policy.Exhausted(iter) {
			res.Status = convergence.IterationLimit
			if err := policy.Finish(res.Status); err != nil {
				return res, fmt.Errorf("newton: %w", err)
			}
			return res, nil
		}

		slope := deriv.DerivativeAt(f, x, fx, o.Step, o.Formula)
		o.OnIterate(iter, x, fx, slope)
		if !isFinite(slope) || math.Abs(slope) <= o.MinSlope {
			res.Status = convergence.Failed
			return res, fmt.Errorf("newton: slope %v at x=%v: %w", slope, x, convergence.ErrDivisionByZero)
		}

		next := x - fx/slope
		if !isFinite(next) {
			res.Status = convergence.Failed
			return res, fmt.Errorf("newton: step from x=%v gave %v: %w", x, next, convergence.ErrNonConvergence)
		}
		x = next
		history = append(history, x)
	}
}

// Derivative is the slope function Solve uses with default options:
// forward differences, h = 1e-6.
func Derivative(f func(float64) float64) func(float64) float64 {
	return deriv.Func(f, deriv.DefaultStep, deriv.Forward)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
