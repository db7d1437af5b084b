package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/rootfind/convergence"
	"github.com/katalvlaran/rootfind/poly"
	"github.com/katalvlaran/rootfind/render"
)

// DefaultCoeffs is z³ + 2z² + 12z + 24, roots -2 and ±2√3·i.
const DefaultCoeffs = "1,2,12,24"

// plotSize is the edge length of a single-panel PNG.
const plotSize = 6 * vg.Inch

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	coeffs  string
	config  string
	tol     float64
	maxIter int
	strict  bool
	verbose bool
	json    bool
	plot    string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "rootfind",
		Short: "Approximate polynomial roots with iterative solvers",
		Long: `Approximate the roots of a real polynomial.

Methods:
  newton         Newton-Raphson with a finite-difference slope
  secant         secant method from two starting points
  bisect         bisection of a sign-changing interval
  durand-kerner  all complex roots at once

Coefficients are given highest degree first: "1,0,-4" is x^2 - 4.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.coeffs, "coeffs", DefaultCoeffs,
		"Polynomial coefficients, highest degree first")
	pf.StringVar(&g.config, "config", "",
		"YAML file with tolerance, max_iterations, strict_limit")
	pf.Float64Var(&g.tol, "tol", convergence.DefaultTolerance,
		"Convergence tolerance (overrides --config)")
	pf.IntVar(&g.maxIter, "max-iter", convergence.DefaultMaxIterations,
		"Iteration budget (overrides --config)")
	pf.BoolVar(&g.strict, "strict", convergence.DefaultStrictLimit,
		"Treat an exhausted budget as an error")
	pf.BoolVarP(&g.verbose, "verbose", "v", false,
		"Log every iteration to stderr")
	pf.BoolVar(&g.json, "json", false,
		"Output as JSON")
	pf.StringVar(&g.plot, "plot", "",
		"Write a PNG of the run to this path")

	root.AddCommand(
		newNewtonCmd(g),
		newSecantCmd(g),
		newBisectCmd(g),
		newDurandKernerCmd(g),
		newGalleryCmd(g),
		newPolicyCmd(g),
	)

	return root
}

// polynomial parses --coeffs.
func (g *globalFlags) polynomial() (poly.Polynomial, error) {
	p, err := poly.Parse(g.coeffs)
	if err != nil {
		return poly.Polynomial{}, fmt.Errorf("--coeffs: %w", err)
	}

	return p, nil
}

// policy layers explicitly set flags over --config over the defaults.
func (g *globalFlags) policy(cmd *cobra.Command) (convergence.Policy, error) {
	base := convergence.DefaultPolicy()
	if g.config != "" {
		var err error
		if base, err = convergence.LoadPolicy(g.config); err != nil {
			return convergence.Policy{}, err
		}
	}

	cfg := base.Config()
	flags := cmd.Flags()
	if flags.Changed("tol") {
		if !(g.tol > 0) || math.IsInf(g.tol, 1) {
			return convergence.Policy{}, fmt.Errorf("--tol %g: %w", g.tol, convergence.ErrInvalidPolicy)
		}
		cfg.Tolerance = g.tol
	}
	if flags.Changed("max-iter") {
		if g.maxIter < 1 {
			return convergence.Policy{}, fmt.Errorf("--max-iter %d: %w", g.maxIter, convergence.ErrInvalidPolicy)
		}
		cfg.MaxIterations = g.maxIter
	}
	if flags.Changed("strict") {
		cfg.StrictLimit = g.strict
	}

	return cfg.Policy()
}

// setup resolves the polynomial and the policy for one run.
func (g *globalFlags) setup(cmd *cobra.Command) (poly.Polynomial, convergence.Policy, error) {
	p, err := g.polynomial()
	if err != nil {
		return poly.Polynomial{}, convergence.Policy{}, err
	}
	policy, err := g.policy(cmd)
	if err != nil {
		return poly.Polynomial{}, convergence.Policy{}, err
	}

	return p, policy, nil
}

// logger returns a Debug-level text logger on stderr, or nil when quiet.
func (g *globalFlags) logger(cmd *cobra.Command) *slog.Logger {
	if !g.verbose {
		return nil
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// savePlot builds and writes the --plot PNG, if one was requested.
func (g *globalFlags) savePlot(build func() (*plot.Plot, error)) error {
	if g.plot == "" {
		return nil
	}
	p, err := build()
	if err != nil {
		return err
	}

	return render.Save(p, plotSize, plotSize, g.plot)
}
