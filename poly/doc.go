// Package poly is a small real-coefficient polynomial type used to build
// subject functions for the solvers: Horner evaluation over float64 and
// complex128, derivative coefficients, monic normalisation, and parsing from
// a comma-separated coefficient list.
//
// Coefficients are stored highest degree first:
//
//	poly.MustNew(1, 2, 12, 24) // z³ + 2z² + 12z + 24
package poly
