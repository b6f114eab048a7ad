package specfn_test

import (
	"testing"

	"github.com/katalvlaran/nigfield/specfn"
)

// sink prevents the compiler from eliding the benchmarked call.
var sink float64

// BenchmarkLogBesselK1_SmallBranch exercises the series branch (x ≤ 2).
func BenchmarkLogBesselK1_SmallBranch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v, _ := specfn.LogBesselK1(1.3)
		sink = v
	}
}

// BenchmarkLogBesselK1_LargeBranch exercises the asymptotic branch (x > 2).
func BenchmarkLogBesselK1_LargeBranch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v, _ := specfn.LogBesselK1(250.0)
		sink = v
	}
}

// BenchmarkLogBesselK_Order5 exercises the upward recurrence.
func BenchmarkLogBesselK_Order5(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v, _ := specfn.LogBesselK(5, 3.0)
		sink = v
	}
}
