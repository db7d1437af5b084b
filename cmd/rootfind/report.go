package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/convergence"
	"github.com/katalvlaran/rootfind/durandkerner"
)

// complexValue is the JSON form of a complex root.
type complexValue struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// report is what every solver subcommand prints.
type report struct {
	Method     string                   `json:"method"`
	Polynomial string                   `json:"polynomial"`
	Root       *float64                 `json:"root,omitempty"`
	Roots      []complexValue           `json:"roots,omitempty"`
	Residual   *float64                 `json:"residual"`
	Iterations int                      `json:"iterations"`
	Status     string                   `json:"status"`
	Policy     convergence.PolicyConfig `json:"policy"`
}

// finite returns &v, or nil when v has no JSON representation.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

func realReport(method, polynomial string, root, residual float64, iters int, status convergence.Status, policy convergence.Policy) report {
	return report{
		Method:     method,
		Polynomial: polynomial,
		Root:       &root,
		Residual:   finite(residual),
		Iterations: iters,
		Status:     status.String(),
		Policy:     policy.Config(),
	}
}

func complexReport(polynomial string, res durandkerner.Result, policy convergence.Policy) report {
	roots := make([]complexValue, len(res.Roots))
	for i, z := range res.Roots {
		roots[i] = complexValue{Re: real(z), Im: imag(z)}
	}

	return report{
		Method:     "durand-kerner",
		Polynomial: polynomial,
		Roots:      roots,
		Residual:   finite(res.MaxResidual()),
		Iterations: res.Iterations,
		Status:     res.Status.String(),
		Policy:     policy.Config(),
	}
}

// emit writes r as indented JSON or as aligned text.
func (g *globalFlags) emit(cmd *cobra.Command, r report) error {
	out := cmd.OutOrStdout()
	if g.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	return writeText(out, r)
}

func writeText(w io.Writer, r report) error {
	residual := "n/a"
	if r.Residual != nil {
		residual = fmt.Sprintf("%.3e", *r.Residual)
	}

	if _, err := fmt.Fprintf(w, "method:      %s\npolynomial:  %s\n", r.Method, r.Polynomial); err != nil {
		return err
	}
	if r.Root != nil {
		if _, err := fmt.Fprintf(w, "root:        %.10g\n", *r.Root); err != nil {
			return err
		}
	}
	for i, z := range r.Roots {
		if _, err := fmt.Fprintf(w, "root[%d]:     %.10g%+.10gi\n", i, z.Re, z.Im); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "residual:    %s\niterations:  %d\nstatus:      %s\n", residual, r.Iterations, r.Status)

	return err
}
