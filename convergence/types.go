package convergence

import "errors"

// Sentinel errors shared by all solvers. Solvers wrap them with their own
// package tag, so callers match with errors.Is.
var (
	// ErrInvalidInterval indicates a > b, or endpoints without a sign change.
	ErrInvalidInterval = errors.New("convergence: interval does not bracket a sign change")

	// ErrDivisionByZero indicates a (near-)zero denominator in an update step.
	ErrDivisionByZero = errors.New("convergence: division by zero")

	// ErrNonConvergence indicates that an iterate or residual left the finite range.
	ErrNonConvergence = errors.New("convergence: iteration diverged")

	// ErrIterationLimit indicates that MaxIterations was reached before convergence.
	ErrIterationLimit = errors.New("convergence: iteration limit reached")

	// ErrStalled indicates that the step size met the tolerance but the
	// residual did not.
	ErrStalled = errors.New("convergence: step converged, residual did not")

	// ErrInvalidPolicy indicates a Policy that was not built by DefaultPolicy/NewPolicy.
	ErrInvalidPolicy = errors.New("convergence: invalid policy")

	// ErrInvalidInput indicates solver arguments rejected before iterating.
	ErrInvalidInput = errors.New("convergence: invalid solver input")
)

// Status reports why a solver loop stopped.
//
//   - Continue       — zero value; the run never finished (only seen on errors
//     raised before the first iteration).
//   - Converged      — residual within tolerance.
//   - IterationLimit — MaxIterations reached; the estimate is the best found.
//   - Failed         — a numerical degeneracy aborted the loop.
//   - Stalled        — the step size fell within tolerance but |f(root)| did not.
type Status int

const (
	Continue Status = iota
	Converged
	IterationLimit
	Failed
	Stalled
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Continue:
		return "Continue"
	case Converged:
		return "Converged"
	case IterationLimit:
		return "IterationLimit"
	case Failed:
		return "Failed"
	case Stalled:
		return "Stalled"
	default:
		return "UnknownStatus"
	}
}

// Done reports whether s is a terminal status.
func (s Status) Done() bool { return s != Continue }
