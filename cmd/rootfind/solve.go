package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/deriv"
	"github.com/katalvlaran/rootfind/durandkerner"
	"github.com/katalvlaran/rootfind/newton"
	"github.com/katalvlaran/rootfind/render"
	"github.com/katalvlaran/rootfind/secant"
)

func newNewtonCmd(g *globalFlags) *cobra.Command {
	var (
		x0      float64
		step    float64
		formula string
	)

	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Newton-Raphson from one starting point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, policy, err := g.setup(cmd)
			if err != nil {
				return err
			}
			form, ok := deriv.ParseFormula(formula)
			if !ok {
				return fmt.Errorf("--formula %q: want forward, backward or central", formula)
			}
			if !deriv.ValidStep(step) {
				return fmt.Errorf("--step %g: must be positive and finite", step)
			}

			res, err := newton.Solve(p.Eval, x0, policy,
				newton.WithStep(step),
				newton.WithFormula(form),
				newton.WithLogger(g.logger(cmd)),
			)
			if err != nil {
				return err
			}
			if err := g.savePlot(func() (*plot.Plot, error) {
				return render.NewtonPlot(p.Eval, res, render.Window{})
			}); err != nil {
				return err
			}

			return g.emit(cmd, realReport("newton", p.String(), res.Root, res.Residual, res.Iterations, res.Status, policy))
		},
	}
	cmd.Flags().Float64Var(&x0, "x0", 8, "Starting point")
	cmd.Flags().Float64Var(&step, "step", deriv.DefaultStep, "Finite-difference step")
	cmd.Flags().StringVar(&formula, "formula", deriv.Forward.String(), "Difference formula: forward, backward, central")

	return cmd
}

func newSecantCmd(g *globalFlags) *cobra.Command {
	var x1, x2 float64

	cmd := &cobra.Command{
		Use:   "secant",
		Short: "Secant method from two starting points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, policy, err := g.setup(cmd)
			if err != nil {
				return err
			}

			res, err := secant.Solve(p.Eval, x1, x2, policy, secant.WithLogger(g.logger(cmd)))
			if err != nil {
				return err
			}
			if err := g.savePlot(func() (*plot.Plot, error) {
				return render.SecantPlot(p.Eval, res, render.Window{})
			}); err != nil {
				return err
			}

			return g.emit(cmd, realReport("secant", p.String(), res.Root, res.Residual, res.Iterations, res.Status, policy))
		},
	}
	cmd.Flags().Float64Var(&x1, "x1", -10, "First starting point")
	cmd.Flags().Float64Var(&x2, "x2", -7, "Second starting point")

	return cmd
}

func newBisectCmd(g *globalFlags) *cobra.Command {
	var a, b float64

	cmd := &cobra.Command{
		Use:     "bisect",
		Aliases: []string{"bisection"},
		Short:   "Bisection of a sign-changing interval [a, b]",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, policy, err := g.setup(cmd)
			if err != nil {
				return err
			}

			res, err := bisection.Solve(p.Eval, a, b, policy, bisection.WithLogger(g.logger(cmd)))
			if err != nil {
				return err
			}
			if err := g.savePlot(func() (*plot.Plot, error) {
				return render.BisectionPlot(p.Eval, res, render.Window{})
			}); err != nil {
				return err
			}

			return g.emit(cmd, realReport("bisection", p.String(), res.Root, res.Residual, res.Iterations, res.Status, policy))
		},
	}
	cmd.Flags().Float64Var(&a, "a", -9, "Left end of the interval")
	cmd.Flags().Float64Var(&b, "b", 12, "Right end of the interval")

	return cmd
}

func newDurandKernerCmd(g *globalFlags) *cobra.Command {
	var seeds string

	cmd := &cobra.Command{
		Use:     "durand-kerner",
		Aliases: []string{"dk"},
		Short:   "All complex roots at once",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, policy, err := g.setup(cmd)
			if err != nil {
				return err
			}
			seeder, err := parseSeeder(seeds)
			if err != nil {
				return err
			}

			res, err := durandkerner.SolvePolynomial(p, policy,
				durandkerner.WithSeeder(seeder),
				durandkerner.WithLogger(g.logger(cmd)),
			)
			if err != nil {
				return err
			}
			if err := g.savePlot(func() (*plot.Plot, error) {
				return render.DurandKernerPlot(res)
			}); err != nil {
				return err
			}

			return g.emit(cmd, complexReport(p.String(), res, policy))
		},
	}
	cmd.Flags().StringVar(&seeds, "seeds", "imaginary", "Initial estimates: imaginary (i, 2i, ...) or power (b⁰, b¹, ...)")

	return cmd
}

// parseSeeder maps --seeds onto a Seeder.
func parseSeeder(name string) (durandkerner.Seeder, error) {
	switch name {
	case "", "imaginary":
		return durandkerner.ImaginaryAxisSeeds, nil
	case "power":
		return durandkerner.PowerSeeds(durandkerner.DefaultPowerBase), nil
	default:
		return nil, fmt.Errorf("--seeds %q: want imaginary or power", name)
	}
}
