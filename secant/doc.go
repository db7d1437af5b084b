// Package secant finds a root of a real function with the secant method: the
// slope comes from the two most recent points rather than from a derivative.
//
// Iteration, with a window of two points (x1, x2):
//
//	m  = (f(x2) - f(x1)) / (x2 - x1)
//	x3 = (m·x1 - f(x1)) / m              // x-intercept of the line through (x1, f(x1))
//	x1, x2 ← x2, x3
//
// The loop stops when |x1 - x2| ≤ tolerance or after MaxIterations shifts.
// A small step on a steep function does not imply a small residual, so a
// run whose final |f(x2)| exceeds the tolerance reports convergence.Stalled
// instead of Converged.
// History[0] is the starting pair; every shift appends the new pair.
//
// x1 == x2 on entry and a zero gradient on any step both fail with
// convergence.ErrDivisionByZero.
package secant
