// Package rootfind approximates roots of real functions and polynomials with
// four classic iterative methods that share one stopping rule.
//
// 🚀 What is rootfind?
//
//	A small numerical toolkit that brings together:
//		• Newton-Raphson: one starting point, finite-difference slope
//		• Secant: two starting points, no derivative
//		• Bisection: a sign-changing interval, guaranteed progress
//		• Durand-Kerner: every complex root of a polynomial at once
//
// ✨ Why choose rootfind?
//
//   - One Policy – tolerance, iteration budget and limit handling in one value
//   - Full history – every run returns its iterates for inspection or plotting
//   - No panics on bad input – typed sentinel errors, checked with errors.Is
//   - Hooks – OnIterate callbacks and slog tracing on every solver
//
// Under the hood, everything is organized under these subpackages:
//
//	convergence/  — Policy, Status, sentinel errors, YAML config, slog tracing
//	deriv/        — forward / backward / central finite differences
//	poly/         — real polynomials: parse, evaluate (real and complex), monic
//	newton/       — Newton-Raphson
//	secant/       — Secant method
//	bisection/    — Bisection
//	durandkerner/ — Durand-Kerner (Weierstrass) simultaneous iteration
//	render/       — gonum/plot panels, domain maps and galleries
//	cmd/rootfind  — command-line front end
//
// Quick example:
//
//	p := poly.MustNew(1, 2, 12, 24) // z³ + 2z² + 12z + 24
//	res, err := bisection.Solve(p.Eval, -9, 12, convergence.DefaultPolicy())
//	// res.Root ≈ -2
//
//	all, err := durandkerner.SolvePolynomial(p, convergence.DefaultPolicy())
//	// all.Roots ≈ {-2, +3.4641i, -3.4641i}
//
//	go get github.com/katalvlaran/rootfind
package rootfind
