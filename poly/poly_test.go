package poly_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/poly"
)

func TestNew(t *testing.T) {
	p, err := poly.New(0, 0, 1, -4)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Degree(), "leading zeros are trimmed")
	assert.Equal(t, []float64{1, -4}, p.Coefficients())

	_, err = poly.New(0, 0)
	assert.ErrorIs(t, err, poly.ErrEmpty)
	_, err = poly.New()
	assert.ErrorIs(t, err, poly.ErrEmpty)
	_, err = poly.New(1, math.NaN())
	assert.ErrorIs(t, err, poly.ErrNonFinite)

	assert.Panics(t, func() { poly.MustNew(0) })
}

func TestCoefficientsAreCopied(t *testing.T) {
	in := []float64{1, 0, -4}
	p := poly.MustNew(in...)
	in[0] = 99
	c := p.Coefficients()
	c[1] = 42
	assert.Equal(t, []float64{1, 0, -4}, p.Coefficients())
}

func TestEval(t *testing.T) {
	p := poly.MustNew(1, 0, -4) // x² - 4
	assert.Equal(t, 60.0, p.Eval(8))
	assert.Equal(t, 0.0, p.Eval(2))
	assert.Equal(t, 0.0, p.Eval(-2))

	q := poly.MustNew(1, 2, 12, 24) // (z+2)(z²+12)
	assert.Equal(t, complex(0, 0), q.EvalComplex(-2))
	assert.Less(t, cmplx.Abs(q.EvalComplex(complex(0, 2*math.Sqrt(3)))), 1e-12)

	f, g := q.Func(), q.ComplexFunc()
	assert.Equal(t, q.Eval(1.5), f(1.5))
	assert.Equal(t, q.EvalComplex(1i), g(1i))
}

func TestParse(t *testing.T) {
	p, err := poly.Parse("1, 2, 12, 24")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 12, 24}, p.Coefficients())

	p, err = poly.Parse("-1 2 3")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Degree())

	_, err = poly.Parse("")
	assert.ErrorIs(t, err, poly.ErrSyntax)
	_, err = poly.Parse("1,x,3")
	assert.ErrorIs(t, err, poly.ErrSyntax)
	_, err = poly.Parse("0,0")
	assert.ErrorIs(t, err, poly.ErrEmpty)

	p, err = poly.Parse(" 1 ,0, 2 ")
	require.NoError(t, err)
	assert.Equal(t, "x^2 + 2", p.String())
}

// TestParse_EmptyField rejects missing coefficients instead of dropping them.
func TestParse_EmptyField(t *testing.T) {
	for _, in := range []string{"1,,2", "1,2,", ",1,2", "1, ,2", ","} {
		_, err := poly.Parse(in)
		assert.ErrorIs(t, err, poly.ErrSyntax, in)
	}
}

func TestMonicAndDerivative(t *testing.T) {
	p := poly.MustNew(2, 4, -6)
	m := p.Monic()
	assert.Equal(t, []float64{1, 2, -3}, m.Coefficients())
	assert.Equal(t, 2.0, p.Lead(), "Monic must not mutate the receiver")

	d := poly.MustNew(1, 2, 12, 24).Derivative()
	assert.Equal(t, []float64{3, 4, 12}, d.Coefficients())

	c := poly.MustNew(7).Derivative()
	assert.Equal(t, -1, c.Degree())
	assert.Equal(t, 0.0, c.Eval(3))
}

func TestString(t *testing.T) {
	assert.Equal(t, "x^3 + 2x^2 + 12x + 24", poly.MustNew(1, 2, 12, 24).String())
	assert.Equal(t, "-x^2 + 2x + 3", poly.MustNew(-1, 2, 3).String())
	assert.Equal(t, "x^2 - 4", poly.MustNew(1, 0, -4).String())
	assert.Equal(t, "0.5x - 1", poly.MustNew(0.5, -1).String())
	assert.Equal(t, "0", poly.Polynomial{}.String())
}
