package durandkerner_test

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/rootfind/convergence"
	"github.com/katalvlaran/rootfind/durandkerner"
	"github.com/katalvlaran/rootfind/poly"
)

// ExampleSolvePolynomial finds every root of z³ + 2z² + 12z + 24.
// The estimates come back in seed order, so they are sorted for display.
func ExampleSolvePolynomial() {
	p := poly.MustNew(1, 2, 12, 24)

	res, err := durandkerner.SolvePolynomial(p, convergence.DefaultPolicy())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	roots := append([]complex128(nil), res.Roots...)
	sort.Slice(roots, func(i, j int) bool {
		if clean(real(roots[i])) != clean(real(roots[j])) {
			return real(roots[i]) < real(roots[j])
		}
		return imag(roots[i]) < imag(roots[j])
	})
	for _, z := range roots {
		fmt.Printf("%.4f%+.4fi\n", clean(real(z)), clean(imag(z)))
	}
	fmt.Println(res.Status)
	// Output:
	// -2.0000+0.0000i
	// 0.0000-3.4641i
	// 0.0000+3.4641i
	// Converged
}

// clean maps round-off noise around zero to an exact zero.
func clean(v float64) float64 {
	if math.Abs(v) < 1e-9 {
		return 0
	}
	return v
}
