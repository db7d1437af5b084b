// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"math/cmplx"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/durandkerner"
	"github.com/katalvlaran/rootfind/newton"
	"github.com/katalvlaran/rootfind/secant"
)

// Samples is the number of points used to draw a function curve.
const Samples = 200

// Sentinel errors.
var (
	// ErrNoData indicates a Result with nothing to draw.
	ErrNoData = errors.New("render: nothing to draw")

	// ErrBadWindow indicates an empty or non-finite plotting window.
	ErrBadWindow = errors.New("render: invalid window")

	// ErrBadGrid indicates an empty panel grid or mismatched row lengths.
	ErrBadGrid = errors.New("render: invalid panel grid")
)

// Window is a closed interval [Lo, Hi] on the x axis. The zero Window means
// "fit the iterates".
type Window struct {
	Lo, Hi float64
}

func (w Window) isZero() bool { return w.Lo == 0 && w.Hi == 0 }

// fit returns w, or the padded span of xs when w is zero.
func (w Window) fit(xs []float64) (Window, error) {
	if w.isZero() {
		finite := make([]float64, 0, len(xs))
		for _, x := range xs {
			if !math.IsNaN(x) && !math.IsInf(x, 0) {
				finite = append(finite, x)
			}
		}
		if len(finite) == 0 {
			return w, ErrNoData
		}
		lo, hi := floats.Min(finite), floats.Max(finite)
		pad := 0.1 * (hi - lo)
		if pad == 0 {
			pad = 1
		}
		w = Window{Lo: lo - pad, Hi: hi + pad}
	}
	if !(w.Lo < w.Hi) || math.IsInf(w.Lo, 0) || math.IsInf(w.Hi, 0) {
		return w, fmt.Errorf("%w: [%g, %g]", ErrBadWindow, w.Lo, w.Hi)
	}

	return w, nil
}

// curve samples f on w, dropping non-finite values.
func curve(f func(float64) float64, w Window) plotter.XYs {
	xs := make([]float64, Samples)
	floats.Span(xs, w.Lo, w.Hi)
	pts := make(plotter.XYs, 0, Samples)
	for _, x := range xs {
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}

	return pts
}

// onCurve maps every x to (x, f(x)).
func onCurve(f func(float64) float64, xs []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		pts[i] = plotter.XY{X: x, Y: f(x)}
	}

	return pts
}

// functionPlot draws f on w, the iterate path and the final root.
func functionPlot(title string, f func(float64) float64, w Window, path []float64, root float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLines(p, "f(x)", curve(f, w)); err != nil {
		return nil, fmt.Errorf("render: %s curve: %w", title, err)
	}
	if err := plotutil.AddLinePoints(p, "History", onCurve(f, path)); err != nil {
		return nil, fmt.Errorf("render: %s history: %w", title, err)
	}

	result, err := plotter.NewScatter(onCurve(f, []float64{root}))
	if err != nil {
		return nil, fmt.Errorf("render: %s result: %w", title, err)
	}
	result.GlyphStyle.Shape = draw.CircleGlyph{}
	result.GlyphStyle.Radius = vg.Points(4)
	result.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
	p.Add(result)
	p.Legend.Add("Result", result)
	p.Legend.Top = true

	return p, nil
}

// NewtonPlot draws f with the Newton-Raphson iterates.
func NewtonPlot(f func(float64) float64, res newton.Result, w Window) (*plot.Plot, error) {
	if len(res.History) == 0 {
		return nil, fmt.Errorf("%w: empty newton history", ErrNoData)
	}
	w, err := w.fit(res.History)
	if err != nil {
		return nil, err
	}

	return functionPlot("Newton-Raphson", f, w, res.History, res.Root)
}

// BisectionPlot draws f with the bisection midpoints.
func BisectionPlot(f func(float64) float64, res bisection.Result, w Window) (*plot.Plot, error) {
	if len(res.History) == 0 {
		return nil, fmt.Errorf("%w: empty bisection history", ErrNoData)
	}
	w, err := w.fit(append([]float64{res.Lo, res.Hi}, res.History...))
	if err != nil {
		return nil, err
	}

	return functionPlot("Bisection", f, w, res.History, res.Root)
}

// SecantPlot draws f with every secant chord from the history.
func SecantPlot(f func(float64) float64, res secant.Result, w Window) (*plot.Plot, error) {
	if len(res.History) == 0 {
		return nil, fmt.Errorf("%w: empty secant history", ErrNoData)
	}
	xs := make([]float64, 0, 2*len(res.History))
	for _, pr := range res.History {
		xs = append(xs, pr.X1, pr.X2)
	}
	w, err := w.fit(xs)
	if err != nil {
		return nil, err
	}

	// the iterate path is x1 of each window followed by the last x2
	path := make([]float64, 0, len(res.History)+1)
	for _, pr := range res.History {
		path = append(path, pr.X1)
	}
	path = append(path, res.History[len(res.History)-1].X2)

	p, err := functionPlot("Secant", f, w, path, res.Root)
	if err != nil {
		return nil, err
	}
	for _, pr := range res.History {
		chord, err := plotter.NewLine(onCurve(f, []float64{pr.X1, pr.X2}))
		if err != nil {
			return nil, fmt.Errorf("render: secant chord: %w", err)
		}
		chord.Color = color.Gray{Y: 150}
		chord.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(chord)
	}

	return p, nil
}

// DurandKernerPlot draws the path of every estimate in the complex plane.
func DurandKernerPlot(res durandkerner.Result) (*plot.Plot, error) {
	if len(res.History) == 0 || len(res.History[0]) == 0 {
		return nil, fmt.Errorf("%w: empty durand-kerner history", ErrNoData)
	}
	p := plot.New()
	p.Title.Text = "Durand-Kerner"
	p.X.Label.Text = "Re z"
	p.Y.Label.Text = "Im z"
	p.Add(plotter.NewGrid())

	deg := len(res.History[0])
	seeds := make(plotter.XYs, deg)
	for k := 0; k < deg; k++ {
		path := make(plotter.XYs, 0, len(res.History))
		for _, row := range res.History {
			z := row[k]
			if cmplx.IsNaN(z) || cmplx.IsInf(z) {
				break
			}
			path = append(path, plotter.XY{X: real(z), Y: imag(z)})
		}
		seeds[k] = plotter.XY{X: real(res.History[0][k]), Y: imag(res.History[0][k])}

		line, err := plotter.NewLine(path)
		if err != nil {
			return nil, fmt.Errorf("render: estimate %d: %w", k, err)
		}
		line.Color = plotutil.Color(k)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("z%d", k), line)
	}

	start, err := plotter.NewScatter(seeds)
	if err != nil {
		return nil, fmt.Errorf("render: seeds: %w", err)
	}
	start.GlyphStyle.Shape = draw.RingGlyph{}
	p.Add(start)
	p.Legend.Add("Seeds", start)

	if len(res.Roots) > 0 {
		final := make(plotter.XYs, len(res.Roots))
		for k, z := range res.Roots {
			final[k] = plotter.XY{X: real(z), Y: imag(z)}
		}
		end, err := plotter.NewScatter(final)
		if err != nil {
			return nil, fmt.Errorf("render: roots: %w", err)
		}
		end.GlyphStyle.Shape = draw.CrossGlyph{}
		end.GlyphStyle.Radius = vg.Points(4)
		p.Add(end)
		p.Legend.Add("Roots", end)
	}

	return p, nil
}

// Region is a rectangle of the complex plane, Min bottom-left and Max
// top-right.
type Region struct {
	Min, Max complex128
}

// check rejects grids smaller than 2×2 and empty or non-finite rectangles.
func (reg Region) check(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: grid size %d", ErrBadWindow, n)
	}
	if !(real(reg.Min) < real(reg.Max)) || !(imag(reg.Min) < imag(reg.Max)) ||
		cmplx.IsInf(reg.Min) || cmplx.IsInf(reg.Max) {
		return fmt.Errorf("%w: region %v..%v", ErrBadWindow, reg.Min, reg.Max)
	}

	return nil
}

// magnitudeGrid implements plotter.GridXYZ over log₁₀|f|.
type magnitudeGrid struct {
	xs, ys []float64
	z      [][]float64 // z[row][col]
}

func (g magnitudeGrid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g magnitudeGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g magnitudeGrid) X(c int) float64    { return g.xs[c] }
func (g magnitudeGrid) Y(r int) float64    { return g.ys[r] }

// DomainPlot renders log₁₀|f(z)| over reg on an n×n grid. Exact zeros
// and overflow are clamped to the finite extremes of the grid.
func DomainPlot(f func(complex128) complex128, reg Region, n int) (*plot.Plot, error) {
	if err := reg.check(n); err != nil {
		return nil, err
	}

	g := magnitudeGrid{xs: make([]float64, n), ys: make([]float64, n), z: make([][]float64, n)}
	floats.Span(g.xs, real(reg.Min), real(reg.Max))
	floats.Span(g.ys, imag(reg.Min), imag(reg.Max))

	lo, hi := math.Inf(1), math.Inf(-1)
	for r, y := range g.ys {
		g.z[r] = make([]float64, n)
		for c, x := range g.xs {
			v := math.Log10(cmplx.Abs(f(complex(x, y))))
			g.z[r][c] = v
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
		}
	}
	if math.IsInf(lo, 1) {
		return nil, fmt.Errorf("%w: f is not finite anywhere in the region", ErrNoData)
	}
	for _, row := range g.z {
		for c, v := range row {
			switch {
			case math.IsInf(v, -1):
				row[c] = lo
			case math.IsInf(v, 1), math.IsNaN(v):
				row[c] = hi
			}
		}
	}
	if lo == hi {
		hi = lo + 1
	}

	p := plot.New()
	p.Title.Text = "log₁₀|f(z)|"
	p.X.Label.Text = "Re z"
	p.Y.Label.Text = "Im z"

	hm := plotter.NewHeatMap(g, palette.Heat(64, 1))
	hm.Min, hm.Max = lo, hi
	p.Add(hm)

	return p, nil
}

// PhasePlot is the domain-coloured view of f over reg on an n×n grid: the
// hue of each pixel is arg f(z), and the brightness cycles with the
// fractional part of log₂|f(z)|. Roots show up as points where every hue
// meets, and poles look the same with the colours running the other way.
// Non-finite values are drawn black.
func PhasePlot(f func(complex128) complex128, reg Region, n int) (*plot.Plot, error) {
	if err := reg.check(n); err != nil {
		return nil, err
	}

	xs, ys := make([]float64, n), make([]float64, n)
	floats.Span(xs, real(reg.Min), real(reg.Max))
	floats.Span(ys, imag(reg.Min), imag(reg.Max))

	img := image.NewRGBA(image.Rect(0, 0, n, n))
	finite := 0
	for r, y := range ys {
		for c, x := range xs {
			col := phaseColor(f(complex(x, y)))
			if col != nil {
				finite++
			} else {
				col = color.Black
			}
			// image rows grow downwards, the imaginary axis upwards
			img.Set(c, n-1-r, col)
		}
	}
	if finite == 0 {
		return nil, fmt.Errorf("%w: f is not finite anywhere in the region", ErrNoData)
	}

	p := plot.New()
	p.Title.Text = "arg f(z)"
	p.X.Label.Text = "Re z"
	p.Y.Label.Text = "Im z"
	p.Add(plotter.NewImage(img, real(reg.Min), imag(reg.Min), real(reg.Max), imag(reg.Max)))

	return p, nil
}

// phaseColor maps w to its domain colour, or nil when w is not finite.
func phaseColor(w complex128) color.Color {
	if cmplx.IsNaN(w) || cmplx.IsInf(w) {
		return nil
	}
	hue := cmplx.Phase(w) / (2 * math.Pi)
	if hue < 0 {
		hue++
	}
	val := 0.0
	if m := cmplx.Abs(w); m > 0 {
		l := math.Log2(m)
		val = 0.6 + 0.4*(l-math.Floor(l))
	}

	return palette.HSVA{H: hue, S: 1, V: val, A: 1}
}

// Gallery aligns a grid of plots on one w×h PNG written to out. Nil cells
// are left blank.
func Gallery(out io.Writer, panels [][]*plot.Plot, w, h vg.Length) error {
	if len(panels) == 0 || len(panels[0]) == 0 {
		return ErrBadGrid
	}
	cols := len(panels[0])
	for i, row := range panels {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d panels, want %d", ErrBadGrid, i, len(row), cols)
		}
	}

	img := vgimg.New(w, h)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      cols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}

	canvases := plot.Align(panels, tiles, dc)
	for i, row := range panels {
		for j, p := range row {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(out); err != nil {
		return fmt.Errorf("render: write gallery: %w", err)
	}

	return nil
}

// SaveGallery writes Gallery output to path.
func SaveGallery(path string, panels [][]*plot.Plot, w, h vg.Length) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := Gallery(f, panels, w, h); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Save writes a single plot; the format follows the file extension.
func Save(p *plot.Plot, w, h vg.Length, path string) error {
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
