package render_test

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/convergence"
	"github.com/katalvlaran/rootfind/durandkerner"
	"github.com/katalvlaran/rootfind/newton"
	"github.com/katalvlaran/rootfind/poly"
	"github.com/katalvlaran/rootfind/render"
	"github.com/katalvlaran/rootfind/secant"
)

var cubic = poly.MustNew(1, 2, 12, 24)

func square(x float64) float64 { return x * x }

// panels solves the reference problems and draws one panel per method.
func panels(t *testing.T) [][]*plot.Plot {
	t.Helper()
	policy := convergence.DefaultPolicy()

	nr, err := newton.Solve(square, 8, policy)
	require.NoError(t, err)
	np, err := render.NewtonPlot(square, nr, render.Window{Lo: -10, Hi: 10})
	require.NoError(t, err)

	sr, err := secant.Solve(cubic.Eval, -3, -1, policy)
	require.NoError(t, err)
	sp, err := render.SecantPlot(cubic.Eval, sr, render.Window{})
	require.NoError(t, err)

	br, err := bisection.Solve(cubic.Eval, -9, 12, policy)
	require.NoError(t, err)
	bp, err := render.BisectionPlot(cubic.Eval, br, render.Window{})
	require.NoError(t, err)

	dr, err := durandkerner.SolvePolynomial(cubic, policy)
	require.NoError(t, err)
	dp, err := render.DurandKernerPlot(dr)
	require.NoError(t, err)

	return [][]*plot.Plot{{np, sp}, {bp, dp}}
}

// TestGallery_PNG draws the 2×2 figure and checks the image size.
func TestGallery_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Gallery(&buf, panels(t), 4*vg.Inch, 4*vg.Inch))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Greater(t, cfg.Width, 0)
	assert.Equal(t, cfg.Width, cfg.Height)
}

// TestGallery_BlankCell leaves nil panels empty.
func TestGallery_BlankCell(t *testing.T) {
	grid := panels(t)
	grid[1][1] = nil

	var buf bytes.Buffer
	assert.NoError(t, render.Gallery(&buf, grid, 4*vg.Inch, 4*vg.Inch))
	assert.NotZero(t, buf.Len())
}

// TestGallery_BadGrid rejects empty and ragged grids.
func TestGallery_BadGrid(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.Gallery(&buf, nil, vg.Inch, vg.Inch), render.ErrBadGrid)

	p := plot.New()
	ragged := [][]*plot.Plot{{p, p}, {p}}
	assert.ErrorIs(t, render.Gallery(&buf, ragged, vg.Inch, vg.Inch), render.ErrBadGrid)
}

// TestSave writes PNG files into a temp dir.
func TestSave(t *testing.T) {
	dir := t.TempDir()

	single := filepath.Join(dir, "newton.png")
	require.NoError(t, render.Save(panels(t)[0][0], 3*vg.Inch, 3*vg.Inch, single))

	grid := filepath.Join(dir, "gallery.png")
	require.NoError(t, render.SaveGallery(grid, panels(t), 4*vg.Inch, 4*vg.Inch))

	for _, path := range []string{single, grid} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), path)
	}
}

// TestDomainPlot draws the magnitude map and validates its arguments.
func TestDomainPlot(t *testing.T) {
	reg := render.Region{Min: complex(-4, -4), Max: complex(4, 4)}

	p, err := render.DomainPlot(cubic.EvalComplex, reg, 41)
	require.NoError(t, err)
	assert.NoError(t, render.Save(p, 3*vg.Inch, 3*vg.Inch, filepath.Join(t.TempDir(), "map.png")))

	// an exact zero on the grid must not break the color range
	_, err = render.DomainPlot(func(z complex128) complex128 { return z }, reg, 41)
	assert.NoError(t, err)

	_, err = render.DomainPlot(cubic.EvalComplex, reg, 1)
	assert.ErrorIs(t, err, render.ErrBadWindow)
	_, err = render.DomainPlot(cubic.EvalComplex, render.Region{Min: 1, Max: 1}, 10)
	assert.ErrorIs(t, err, render.ErrBadWindow)

	nan := func(complex128) complex128 { return complex(math.NaN(), 0) }
	_, err = render.DomainPlot(nan, reg, 10)
	assert.ErrorIs(t, err, render.ErrNoData)
}

// TestPhasePlot draws the domain-coloured view and validates its arguments.
func TestPhasePlot(t *testing.T) {
	reg := render.Region{Min: complex(-4, -4), Max: complex(4, 4)}

	p, err := render.PhasePlot(cubic.EvalComplex, reg, 41)
	require.NoError(t, err)
	assert.Equal(t, "arg f(z)", p.Title.Text)
	assert.NoError(t, render.Save(p, 3*vg.Inch, 3*vg.Inch, filepath.Join(t.TempDir(), "phase.png")))

	// a pole on the grid is drawn black, not rejected
	_, err = render.PhasePlot(func(z complex128) complex128 { return 1 / z }, reg, 41)
	assert.NoError(t, err)

	_, err = render.PhasePlot(cubic.EvalComplex, reg, 1)
	assert.ErrorIs(t, err, render.ErrBadWindow)
	_, err = render.PhasePlot(cubic.EvalComplex, render.Region{Min: 2, Max: 1}, 10)
	assert.ErrorIs(t, err, render.ErrBadWindow)

	nan := func(complex128) complex128 { return complex(math.NaN(), 0) }
	_, err = render.PhasePlot(nan, reg, 10)
	assert.ErrorIs(t, err, render.ErrNoData)
}

// TestPlots_Errors covers empty results and bad windows.
func TestPlots_Errors(t *testing.T) {
	_, err := render.NewtonPlot(square, newton.Result{}, render.Window{})
	assert.ErrorIs(t, err, render.ErrNoData)
	_, err = render.SecantPlot(square, secant.Result{}, render.Window{})
	assert.ErrorIs(t, err, render.ErrNoData)
	_, err = render.BisectionPlot(square, bisection.Result{}, render.Window{})
	assert.ErrorIs(t, err, render.ErrNoData)
	_, err = render.DurandKernerPlot(durandkerner.Result{})
	assert.ErrorIs(t, err, render.ErrNoData)

	res := newton.Result{Root: 1, History: []float64{1}}
	_, err = render.NewtonPlot(square, res, render.Window{Lo: 2, Hi: -2})
	assert.ErrorIs(t, err, render.ErrBadWindow)

	// a single iterate still gets a padded window
	_, err = render.NewtonPlot(square, res, render.Window{})
	assert.NoError(t, err)
}
