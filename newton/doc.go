// Package newton finds a root of a real function with the Newton-Raphson
// method, using a finite-difference slope instead of an analytic derivative.
//
// 🚀 Iteration:
//
//	d(x)  = (f(x+h) - f(x)) / h          // deriv.Forward, h = 1e-6
//	x ← x - f(x) / d(x)
//
// The loop stops when |f(x)| ≤ tolerance (Converged) or after MaxIterations
// updates (IterationLimit). History[0] is the starting guess; each update
// appends the new x, so len(History) ≤ MaxIterations+1.
//
// Errors (wrapped, match with errors.Is):
//   - convergence.ErrInvalidPolicy  — zero-value policy.
//   - convergence.ErrInvalidInput   — nil f or non-finite x0.
//   - convergence.ErrDivisionByZero — |d(x)| ≤ MinSlope or d(x) not finite.
//   - convergence.ErrNonConvergence — f(x) or the next x is NaN/±Inf.
//   - convergence.ErrIterationLimit — cap hit under a strict policy.
//
// On a mid-run error the returned Result still carries the history so far.
package newton
