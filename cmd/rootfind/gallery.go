package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/durandkerner"
	"github.com/katalvlaran/rootfind/newton"
	"github.com/katalvlaran/rootfind/render"
	"github.com/katalvlaran/rootfind/secant"
)

// domainGrid is the side of the sample grid behind the --domain panel.
const domainGrid = 120

func newGalleryCmd(g *globalFlags) *cobra.Command {
	var (
		out        string
		x0, x1, x2 float64
		a, b       float64
		domain     bool
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Run all four methods and draw them on one PNG",
		Long: `Run Newton-Raphson, Secant, Bisection and Durand-Kerner on the same
polynomial concurrently and draw a 2x2 figure. With --domain a third column
shows log10|f(z)| and the phase of f(z) around the Durand-Kerner roots.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, policy, err := g.setup(cmd)
			if err != nil {
				return err
			}
			log := g.logger(cmd)
			f := p.Eval

			var (
				np, sp, bp, dp *plot.Plot
				roots          []complex128
				eg             errgroup.Group
			)
			eg.Go(func() error {
				res, err := newton.Solve(f, x0, policy, newton.WithLogger(log))
				if err != nil {
					return err
				}
				np, err = render.NewtonPlot(f, res, render.Window{})
				return err
			})
			eg.Go(func() error {
				res, err := secant.Solve(f, x1, x2, policy, secant.WithLogger(log))
				if err != nil {
					return err
				}
				sp, err = render.SecantPlot(f, res, render.Window{})
				return err
			})
			eg.Go(func() error {
				res, err := bisection.Solve(f, a, b, policy, bisection.WithLogger(log))
				if err != nil {
					return err
				}
				bp, err = render.BisectionPlot(f, res, render.Window{})
				return err
			})
			eg.Go(func() error {
				res, err := durandkerner.SolvePolynomial(p, policy, durandkerner.WithLogger(log))
				if err != nil {
					return err
				}
				roots = res.Roots
				dp, err = render.DurandKernerPlot(res)
				return err
			})
			if err := eg.Wait(); err != nil {
				return err
			}

			panels := [][]*plot.Plot{{np, sp}, {bp, dp}}
			width := 10 * vg.Inch
			if domain {
				reg := regionAround(roots)
				mp, err := render.DomainPlot(p.EvalComplex, reg, domainGrid)
				if err != nil {
					return err
				}
				pp, err := render.PhasePlot(p.EvalComplex, reg, domainGrid)
				if err != nil {
					return err
				}
				panels[0] = append(panels[0], mp)
				panels[1] = append(panels[1], pp)
				width = 15 * vg.Inch
			}

			if err := render.SaveGallery(out, panels, width, 10*vg.Inch); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return err
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&out, "out", "o", "roots.png", "Output PNG path")
	fl.Float64Var(&x0, "x0", 8, "Newton starting point")
	fl.Float64Var(&x1, "x1", -10, "Secant first starting point")
	fl.Float64Var(&x2, "x2", -7, "Secant second starting point")
	fl.Float64Var(&a, "a", -9, "Bisection left end")
	fl.Float64Var(&b, "b", 12, "Bisection right end")
	fl.BoolVar(&domain, "domain", false, "Add log10|f(z)| and arg f(z) panels")

	return cmd
}

// regionAround returns a square covering every finite root with a margin.
func regionAround(roots []complex128) render.Region {
	re := make([]float64, 0, len(roots))
	im := make([]float64, 0, len(roots))
	for _, z := range roots {
		if math.IsNaN(real(z)) || math.IsNaN(imag(z)) || math.IsInf(real(z), 0) || math.IsInf(imag(z), 0) {
			continue
		}
		re = append(re, real(z))
		im = append(im, imag(z))
	}
	if len(re) == 0 {
		return render.Region{Min: complex(-1, -1), Max: complex(1, 1)}
	}

	cx := (floats.Min(re) + floats.Max(re)) / 2
	cy := (floats.Min(im) + floats.Max(im)) / 2
	half := math.Max(floats.Max(re)-floats.Min(re), floats.Max(im)-floats.Min(im))/2 + 1

	return render.Region{Min: complex(cx-half, cy-half), Max: complex(cx+half, cy+half)}
}
