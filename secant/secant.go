package secant

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/convergence"
)

// Solve runs the secant method on f from the points x1, x2 under policy.
//
// Contracts:
//   - x1 != x2, both finite.
//   - The loop stops on |x1 - x2| ≤ tolerance. The run is Converged only
//     if |f(Root)| ≤ tolerance as well; otherwise it is Stalled (an error
//     only under a strict policy).
//
// On error the Result carries the pairs accumulated so far.
func Solve(f func(float64) float64, x1, x2 float64, policy convergence.Policy, opts ...Option) (Result, error) {
	if err := policy.Validate(); err != nil {
		return Result{}, fmt.Errorf("secant: %w", err)
	}
	if f == nil {
		return Result{}, fmt.Errorf("secant: nil function: %w", convergence.ErrInvalidInput)
	}
	if !isFinite(x1) || !isFinite(x2) {
		return Result{}, fmt.Errorf("secant: x1=%v x2=%v: %w", x1, x2, convergence.ErrInvalidInput)
	}
	if x1 == x2 {
		return Result{}, fmt.Errorf("secant: initial points coincide at %v: %w", x1, convergence.ErrDivisionByZero)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	history := make([]Pair, 1, policy.HistoryCap())
	history[0] = Pair{X1: x1, X2: x2}

	res := Result{History: history}
	for iter := 0; ; iter++ {
		res.Root, res.History, res.Iterations = x2, history, iter

		if policy.Within(math.Abs(x1 - x2)) {
			res.Status = convergence.Converged
			break
		}
		if policy.Exhausted(iter) {
			res.Status = convergence.IterationLimit
			break
		}

		f1, f2 := f(x1), f(x2)
		m := gradient(x1, f1, x2, f2)
		if m == 0 || !isFinite(m) {
			res.Status = convergence.Failed
			res.Residual = math.Abs(f2)
			return res, fmt.Errorf("secant: gradient %v between %v and %v: %w", m, x1, x2, convergence.ErrDivisionByZero)
		}

		x3 := intercept(m, x1, f1)
		if !isFinite(x3) {
			res.Status = convergence.Failed
			res.Residual = math.Abs(f2)
			return res, fmt.Errorf("secant: intercept %v: %w", x3, convergence.ErrNonConvergence)
		}

		x1, x2 = x2, x3
		history = append(history, Pair{X1: x1, X2: x2})
		o.OnIterate(iter, x1, x2, m)
	}

	res.Residual = math.Abs(f(res.Root))
	if res.Status == convergence.Converged && !policy.Within(res.Residual) {
		res.Status = convergence.Stalled
	}
	if err := policy.Finish(res.Status); err != nil {
		return res, fmt.Errorf("secant: %w", err)
	}

	return res, nil
}

// gradient is the slope of the line through (x1, y1) and (x2, y2).
func gradient(x1, y1, x2, y2 float64) float64 {
	return (y2 - y1) / (x2 - x1)
}

// intercept is the x-axis crossing of the line with slope m through (x, y):
//
//	y - y1 = m(x - x1), y = 0  ⇒  x = (m·x1 - y1) / m
func intercept(m, x, y float64) float64 {
	return (m*x - y) / m
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
