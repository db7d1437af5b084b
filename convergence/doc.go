// Package convergence holds the termination contract shared by every solver
// in rootfind: an immutable Policy (tolerance + iteration cap), the Status a
// run ends with, and the sentinel errors solvers wrap.
//
// 🚀 Why a separate package?
//
//	All four solvers stop for the same two reasons: the residual (or step)
//	fell below a tolerance, or the iteration cap was hit. Keeping that rule
//	in one value makes it impossible for a solver to loop on the residual
//	alone, and lets concurrent callers run with different policies.
//
// ⚙️ Usage:
//
//	policy := convergence.NewPolicy(
//	  convergence.WithTolerance(1e-10),
//	  convergence.WithMaxIterations(50),
//	)
//	res, err := newton.Solve(f, 8, policy)
//
// Error taxonomy (use errors.Is):
//   - ErrInvalidInterval — bracketing precondition violated (bisection).
//   - ErrDivisionByZero  — zero derivative, gradient or root-difference product.
//   - ErrNonConvergence  — an iterate or residual became NaN/±Inf.
//   - ErrIterationLimit  — cap reached; only returned under WithStrictLimit.
//   - ErrInvalidPolicy   — zero-value or otherwise unusable Policy.
//   - ErrInvalidInput    — nil function, non-finite start, bad degree or seeds.
package convergence
