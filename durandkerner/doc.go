// Package durandkerner approximates all roots of a monic polynomial at once
// with the Durand-Kerner (Weierstrass) iteration in complex arithmetic.
//
// 🚀 Round (Jacobi-style, every correction uses the previous round's values):
//
//	for each k:  x'_k = x_k - f(x_k) / Π_{j≠k} (x_k - x_j)
//	x ← x'
//
// The estimates repel each other through the product term, so distinct
// seeds spread out towards distinct roots.
//
// ✨ Contract:
//   - f must be monic of degree deg (leading coefficient 1); SolvePolynomial
//     normalises a poly.Polynomial for you.
//   - Exactly MaxIterations rounds run; there is no residual early exit.
//     Status is Converged when every |f(x_k)| ≤ tolerance afterwards,
//     IterationLimit otherwise.
//   - History[0] is the seed vector, followed by one vector per round.
//   - Seeds come from a Seeder: ImaginaryAxisSeeds (i, 2i, …, deg·i) by
//     default, or PowerSeeds / custom generators.
//   - Roots are returned in seed order; their correspondence to the true
//     roots is unordered.
//
// Errors: coinciding seeds or estimates (a zero difference product) fail
// with convergence.ErrDivisionByZero; NaN/Inf estimates with
// convergence.ErrNonConvergence.
package durandkerner
