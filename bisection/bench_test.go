package bisection_test

import (
	"testing"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/convergence"
)

// BenchmarkSolve measures a full run on the reference cubic.
func BenchmarkSolve(b *testing.B) {
	f := func(x float64) float64 { return (x + 2) * (x - 3) * (x - 2) }
	policy := convergence.DefaultPolicy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bisection.Solve(f, -9, 12, policy); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
