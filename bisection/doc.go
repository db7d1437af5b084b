// Package bisection finds a root of a continuous real function inside a
// bracketing interval [a, b] by repeated halving.
//
// 🚀 Precondition:
//
//	a ≤ b and IsPositive(f(a)) != IsPositive(f(b)). The sign test treats
//	zero as positive (value ≥ 0), so an endpoint that is an exact root
//	counts as "positive". Violations fail with convergence.ErrInvalidInterval
//	before any halving.
//
// ✨ Iteration:
//
//	c = (a+b)/2
//	if IsPositive(f(a)) == IsPositive(f(c)) { a = c } else { b = c }
//	c = (a+b)/2; append c
//
// The loop stops when |f(c)| ≤ tolerance or after MaxIterations halvings.
// Unlike the other solvers, History does not include the first midpoint:
// len(History) ≤ MaxIterations.
package bisection
