package deriv

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// DefaultStep is the fixed finite-difference step used by Newton-Raphson.
const DefaultStep = 1e-6

const panicStepInvalid = "deriv: step must be finite and positive"

// Formula selects the finite-difference stencil.
type Formula int

const (
	// Forward uses f(x) and f(x+h). Default.
	Forward Formula = iota

	// Backward uses f(x-h) and f(x).
	Backward

	// Central uses f(x-h) and f(x+h); second-order accurate.
	Central
)

// String implements fmt.Stringer.
func (f Formula) String() string {
	switch f {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Central:
		return "central"
	default:
		return "unknown"
	}
}

// ParseFormula maps "forward", "backward" or "central" to a Formula.
func ParseFormula(s string) (Formula, bool) {
	switch s {
	case "forward", "":
		return Forward, true
	case "backward":
		return Backward, true
	case "central", "symmetric":
		return Central, true
	default:
		return Forward, false
	}
}

// stencil returns the gonum stencil for f; unknown values fall back to Forward.
func (f Formula) stencil() fd.Formula {
	switch f {
	case Backward:
		return fd.Backward
	case Central:
		return fd.Central
	default:
		return fd.Forward
	}
}

// ValidStep reports whether h is usable as a finite-difference step.
func ValidStep(h float64) bool {
	return h > 0 && !math.IsInf(h, 0) && !math.IsNaN(h)
}

// Derivative estimates f'(x) with step h. Panics when h is not a finite
// positive number.
func Derivative(f func(float64) float64, x, h float64, formula Formula) float64 {
	if !ValidStep(h) {
		panic(panicStepInvalid)
	}

	return fd.Derivative(f, x, &fd.Settings{
		Formula: formula.stencil(),
		Step:    h,
	})
}

// DerivativeAt is Derivative with f(x) already known, saving one evaluation
// for stencils that sample the origin (Forward, Backward).
func DerivativeAt(f func(float64) float64, x, fx, h float64, formula Formula) float64 {
	if !ValidStep(h) {
		panic(panicStepInvalid)
	}

	return fd.Derivative(f, x, &fd.Settings{
		Formula:     formula.stencil(),
		Step:        h,
		OriginKnown: true,
		OriginValue: fx,
	})
}

// Func returns x ↦ f'(x) for a fixed step and formula.
func Func(f func(float64) float64, h float64, formula Formula) func(float64) float64 {
	if !ValidStep(h) {
		panic(panicStepInvalid)
	}

	return func(x float64) float64 {
		return Derivative(f, x, h, formula)
	}
}
