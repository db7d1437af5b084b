// Package deriv approximates first derivatives of real functions by finite
// differences. It is the only source of slopes for the Newton-Raphson solver:
// rootfind does no symbolic differentiation.
//
// Formulas (h is the step, DefaultStep = 1e-6):
//
//	Forward:  (f(x+h) - f(x)) / h
//	Backward: (f(x) - f(x-h)) / h
//	Central:  (f(x+h) - f(x-h)) / 2h
//
// The stencils are evaluated by gonum's diff/fd package; Forward with a known
// f(x) costs a single extra evaluation per call.
package deriv
