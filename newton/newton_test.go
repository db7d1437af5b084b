package newton_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/convergence"
	"github.com/katalvlaran/rootfind/deriv"
	"github.com/katalvlaran/rootfind/newton"
)

func square4(x float64) float64 { return x*x - 4 }

// TestSolve_SquareMinusFour is the reference case: x² - 4 from x0 = 8.
func TestSolve_SquareMinusFour(t *testing.T) {
	policy := convergence.NewPolicy(convergence.WithTolerance(1e-10))

	res, err := newton.Solve(square4, 8, policy)
	require.NoError(t, err)
	assert.Equal(t, convergence.Converged, res.Status)
	assert.True(t, res.Converged())
	assert.InDelta(t, 2.0, res.Root, 1e-9)
	assert.LessOrEqual(t, math.Abs(square4(res.Root)), 1e-10)
	assert.Equal(t, math.Abs(square4(res.Root)), res.Residual)
	assert.Less(t, len(res.History), 20)
	assert.Equal(t, 8.0, res.History[0], "history starts at x0")
	assert.Equal(t, res.Root, res.History[len(res.History)-1])
	assert.Equal(t, len(res.History)-1, res.Iterations)
}

// TestSolve_ParabolaDoubleRoot runs the slow, linearly converging x² case.
func TestSolve_ParabolaDoubleRoot(t *testing.T) {
	policy := convergence.NewPolicy(convergence.WithTolerance(1e-10))

	res, err := newton.Solve(func(x float64) float64 { return x * x }, 8, policy)
	require.NoError(t, err)
	assert.True(t, res.Converged())
	assert.LessOrEqual(t, res.Root*res.Root, 1e-10)
	assert.LessOrEqual(t, len(res.History), policy.MaxIterations()+1)
}

// TestSolve_AlreadyAtRoot performs no update.
func TestSolve_AlreadyAtRoot(t *testing.T) {
	res, err := newton.Solve(square4, 2, convergence.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, []float64{2}, res.History)
}

// TestSolve_IterationLimit uses x² + 1, which has no real root.
func TestSolve_IterationLimit(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	policy := convergence.NewPolicy(convergence.WithMaxIterations(10))

	res, err := newton.Solve(f, 3, policy)
	require.NoError(t, err, "the cap is a soft outcome by default")
	assert.Equal(t, convergence.IterationLimit, res.Status)
	assert.Len(t, res.History, 11)
	assert.Equal(t, 10, res.Iterations)

	strict, err := newton.Solve(f, 3, policy.With(convergence.WithStrictLimit()))
	assert.ErrorIs(t, err, convergence.ErrIterationLimit)
	assert.Equal(t, res.History, strict.History, "strict mode still returns the best estimate")
	assert.Equal(t, res.Root, strict.Root)
}

// TestSolve_ZeroSlope rejects a constant function before moving.
func TestSolve_ZeroSlope(t *testing.T) {
	res, err := newton.Solve(func(float64) float64 { return 5 }, 1, convergence.DefaultPolicy())
	assert.ErrorIs(t, err, convergence.ErrDivisionByZero)
	assert.Equal(t, convergence.Failed, res.Status)
	assert.Equal(t, []float64{1}, res.History)
}

// TestSolve_SaturatedSlope: arctan overshoots until its slope underflows to
// zero; the partial history must survive the error.
func TestSolve_SaturatedSlope(t *testing.T) {
	res, err := newton.Solve(math.Atan, 10, convergence.DefaultPolicy())
	assert.ErrorIs(t, err, convergence.ErrDivisionByZero)
	assert.Len(t, res.History, 4)
	assert.Equal(t, 10.0, res.History[0])
	assert.Greater(t, math.Abs(res.Root), 1e9)
}

// TestSolve_LeavesDomain: ln(x) from 10 jumps to a negative x where ln is NaN.
func TestSolve_LeavesDomain(t *testing.T) {
	res, err := newton.Solve(math.Log, 10, convergence.DefaultPolicy())
	assert.ErrorIs(t, err, convergence.ErrNonConvergence)
	assert.Len(t, res.History, 2)
	assert.Less(t, res.Root, 0.0)
}

// TestSolve_HugeBudget: the largest valid budget must not break preallocation.
func TestSolve_HugeBudget(t *testing.T) {
	policy := convergence.NewPolicy(convergence.WithMaxIterations(math.MaxInt))

	require.NotPanics(t, func() {
		res, err := newton.Solve(func(x float64) float64 { return x*x - 4 }, 8, policy)
		require.NoError(t, err)
		assert.True(t, res.Converged())
	})
}

// TestSolve_InvalidInput fails fast.
func TestSolve_InvalidInput(t *testing.T) {
	_, err := newton.Solve(square4, 8, convergence.Policy{})
	assert.ErrorIs(t, err, convergence.ErrInvalidPolicy)

	_, err = newton.Solve(nil, 8, convergence.DefaultPolicy())
	assert.ErrorIs(t, err, convergence.ErrInvalidInput)

	_, err = newton.Solve(square4, math.NaN(), convergence.DefaultPolicy())
	assert.ErrorIs(t, err, convergence.ErrInvalidInput)

	_, err = newton.Solve(square4, math.Inf(-1), convergence.DefaultPolicy())
	assert.ErrorIs(t, err, convergence.ErrInvalidInput)
}

// TestSolve_Formulas: every stencil reaches the same root.
func TestSolve_Formulas(t *testing.T) {
	policy := convergence.NewPolicy(convergence.WithTolerance(1e-10))
	for _, f := range []deriv.Formula{deriv.Forward, deriv.Backward, deriv.Central} {
		res, err := newton.Solve(square4, 8, policy, newton.WithFormula(f), newton.WithStep(1e-7))
		require.NoError(t, err, f.String())
		assert.InDelta(t, 2.0, res.Root, 1e-9, f.String())
	}
}

// TestSolve_Hook sees every update, in order, without changing the result.
func TestSolve_Hook(t *testing.T) {
	policy := convergence.NewPolicy(convergence.WithTolerance(1e-10))
	plain, err := newton.Solve(square4, 8, policy)
	require.NoError(t, err)

	var xs []float64
	hooked, err := newton.Solve(square4, 8, policy, newton.WithOnIterate(func(iter int, x, fx, slope float64) {
		assert.Equal(t, len(xs), iter)
		assert.Equal(t, square4(x), fx)
		assert.Greater(t, slope, 0.0)
		xs = append(xs, x)
	}))
	require.NoError(t, err)
	assert.Equal(t, plain, hooked)
	assert.Equal(t, plain.History[:plain.Iterations], xs)
}

// TestSolve_Logger writes one debug record per update.
func TestSolve_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	calls := 0
	res, err := newton.Solve(square4, 8, convergence.DefaultPolicy(),
		newton.WithOnIterate(func(int, float64, float64, float64) { calls++ }),
		newton.WithLogger(l),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Iterations, calls, "logger must chain, not replace, the hook")
	assert.Equal(t, res.Iterations, bytes.Count(buf.Bytes(), []byte("method=newton")))
}

// TestSolve_Idempotent: identical inputs give bit-identical results.
func TestSolve_Idempotent(t *testing.T) {
	policy := convergence.NewPolicy(convergence.WithTolerance(1e-12))
	a, errA := newton.Solve(math.Cos, 1, policy)
	b, errB := newton.Solve(math.Cos, 1, policy)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
	assert.InDelta(t, math.Pi/2, a.Root, 1e-9)
}

// TestOptionPanics guards the option constructors.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { newton.WithStep(0) })
	assert.Panics(t, func() { newton.WithStep(math.NaN()) })
	assert.Panics(t, func() { newton.WithMinSlope(-1) })
	assert.Panics(t, func() { newton.WithMinSlope(math.Inf(1)) })
	assert.NotPanics(t, func() { newton.WithMinSlope(0) })
}

// TestDerivative exposes the default slope function.
func TestDerivative(t *testing.T) {
	d := newton.Derivative(square4)
	assert.InDelta(t, 16.0, d(8), 1e-4)
}
