// Package render draws solver runs with gonum/plot.
//
// 🚀 What it draws
//
//   - Function panels: the target f over a real interval with the iterates
//     of Newton-Raphson, Secant or Bisection overlaid and the final root
//     marked.
//   - Trajectories: every Durand-Kerner estimate as a path in the complex
//     plane, seeds and final positions marked.
//   - Domain maps: log₁₀|f(z)| over a rectangle of the complex plane as a
//     heat map, so roots show up as dark wells (DomainPlot), and the
//     domain-coloured phase view with hue = arg f(z) (PhasePlot).
//   - Gallery: any grid of the above aligned on one PNG.
//
// ⚙️ Usage
//
//	p, err := render.NewtonPlot(f, res, render.Window{})
//	if err != nil { ... }
//	err = render.Save(p, 6*vg.Inch, 6*vg.Inch, "newton.png")
//
// The zero Window picks bounds from the iterates themselves.
//
// Nothing here feeds back into the solvers; every function takes a finished
// Result and returns a *plot.Plot.
package render
