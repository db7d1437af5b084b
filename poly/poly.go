package poly

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmpty indicates a polynomial with no non-zero coefficient.
	ErrEmpty = errors.New("poly: polynomial has no non-zero coefficient")

	// ErrNonFinite indicates a NaN or ±Inf coefficient.
	ErrNonFinite = errors.New("poly: coefficient must be finite")

	// ErrSyntax indicates an unparsable coefficient list.
	ErrSyntax = errors.New("poly: malformed coefficient list")
)

// Polynomial is immutable once built; coefficient order is highest degree first.
type Polynomial struct {
	coeffs []float64
}

// New builds a polynomial from coefficients, highest degree first. Leading
// zeros are dropped.
func New(coeffs ...float64) (Polynomial, error) {
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Polynomial{}, fmt.Errorf("coefficient %d: %w", i, ErrNonFinite)
		}
	}
	start := 0
	for start < len(coeffs) && coeffs[start] == 0 {
		start++
	}
	if start == len(coeffs) {
		return Polynomial{}, ErrEmpty
	}
	out := make([]float64, len(coeffs)-start)
	copy(out, coeffs[start:])

	return Polynomial{coeffs: out}, nil
}

// MustNew is New that panics on error; for literals in tests and examples.
func MustNew(coeffs ...float64) Polynomial {
	p, err := New(coeffs...)
	if err != nil {
		panic(err)
	}

	return p
}

// Parse reads a coefficient list such as "1, 2, 12, 24" (highest degree
// first). A list containing a comma is split on commas only, and every
// field must hold a number, so "1,,2" is a syntax error rather than x + 2.
// A list without commas is split on whitespace.
func Parse(s string) (Polynomial, error) {
	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.Split(s, ",")
	} else {
		fields = strings.Fields(s)
	}
	if len(fields) == 0 {
		return Polynomial{}, fmt.Errorf("%q: %w", s, ErrSyntax)
	}
	coeffs := make([]float64, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return Polynomial{}, fmt.Errorf("%q: coefficient %d is empty: %w", s, i, ErrSyntax)
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Polynomial{}, fmt.Errorf("%q: %w", f, ErrSyntax)
		}
		coeffs[i] = v
	}

	return New(coeffs...)
}

// Degree returns the polynomial degree (0 for a non-zero constant).
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coefficients returns a copy of the coefficients, highest degree first.
func (p Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Lead returns the leading coefficient.
func (p Polynomial) Lead() float64 {
	if len(p.coeffs) == 0 {
		return 0
	}

	return p.coeffs[0]
}

// Eval evaluates p at x with Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	var acc float64
	for _, c := range p.coeffs {
		acc = acc*x + c
	}

	return acc
}

// EvalComplex evaluates p at z with Horner's scheme.
func (p Polynomial) EvalComplex(z complex128) complex128 {
	var acc complex128
	for _, c := range p.coeffs {
		acc = acc*z + complex(c, 0)
	}

	return acc
}

// Func returns p as a real subject function.
func (p Polynomial) Func() func(float64) float64 { return p.Eval }

// ComplexFunc returns p as a complex subject function.
func (p Polynomial) ComplexFunc() func(complex128) complex128 { return p.EvalComplex }

// Monic returns p divided by its leading coefficient.
func (p Polynomial) Monic() Polynomial {
	out := p.Coefficients()
	if len(out) == 0 || out[0] == 1 {
		return Polynomial{coeffs: out}
	}
	floats.Scale(1/out[0], out)
	out[0] = 1

	return Polynomial{coeffs: out}
}

// Derivative returns p'. The derivative of a constant is the empty
// polynomial (Degree -1), which evaluates to 0 everywhere.
func (p Polynomial) Derivative() Polynomial {
	n := p.Degree()
	if n < 1 {
		return Polynomial{}
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = p.coeffs[i] * float64(n-i)
	}

	return Polynomial{coeffs: out}
}

// String renders p in descending powers of x, e.g. "x^3 + 2x^2 + 12x + 24".
func (p Polynomial) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	var b strings.Builder
	n := p.Degree()
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		pow := n - i
		mag := math.Abs(c)
		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if mag != 1 || pow == 0 {
			b.WriteString(strconv.FormatFloat(mag, 'g', -1, 64))
		}
		switch {
		case pow == 1:
			b.WriteString("x")
		case pow > 1:
			fmt.Fprintf(&b, "x^%d", pow)
		}
	}

	return b.String()
}
