package constraint

import (
	"testing"

	"github.com/decompopt/moead/apis/config"
	"github.com/decompopt/moead/pkg/moead/benchmarks"
)

func TestEvaluateUnconstrained(t *testing.T) {
	p := benchmarks.NewZDT1(5)
	if v := Evaluate(p, [][]float64{{0.1, 0.2, 0.3, 0.4, 0.5}}); v != nil {
		t.Errorf("unconstrained problem produced violation info: %+v", v)
	}
}

func TestEvaluateBNH(t *testing.T) {
	p := benchmarks.NewBNH()
	// (0,3) violates the first constraint by 9; (3,2) satisfies both.
	v := Evaluate(p, [][]float64{{0, 3}, {3, 2}})
	if v == nil {
		t.Fatal("want violation info for constrained problem")
	}
	if v.Feasible(0) {
		t.Errorf("(0,3) reported feasible with total violation %v", v.Total[0])
	}
	if v.Total[0] != 9 {
		t.Errorf("(0,3) total violation = %v, want 9", v.Total[0])
	}
	if !v.Feasible(1) {
		t.Errorf("(3,2) reported infeasible with total violation %v", v.Total[1])
	}
}

func TestEvaluateRowsPartialUpdate(t *testing.T) {
	p := benchmarks.NewBNH()
	X := [][]float64{{0, 3}, {3, 2}}
	v := Evaluate(p, X)
	before := v.Total[0]

	// Move row 1 to an infeasible point; row 0 stays untouched.
	X[1] = []float64{0, 3}
	EvaluateRows(p, v, X, []int{1})
	if v.Total[0] != before {
		t.Errorf("row 0 changed: %v -> %v", before, v.Total[0])
	}
	if v.Feasible(1) {
		t.Error("row 1 should be infeasible after the move")
	}
}

func TestRankFeasibilityFirst(t *testing.T) {
	// One subproblem, three candidates: positions 0 and 1 are neighbors,
	// position 2 the incumbent. Candidate 0 has the best fitness but is
	// infeasible; the feasible incumbent must outrank it.
	Z := [][]float64{{0.1}, {0.5}, {0.9}}
	viol := map[int]float64{0: 2.0, 1: 0, 2: 0}
	ord := RankNeighborhoods(Z, func(j, _ int) float64 { return viol[j] })
	if len(ord) != 1 || len(ord[0]) != 3 {
		t.Fatalf("unexpected ordering shape: %v", ord)
	}
	want := []int{1, 2, 0}
	for k, j := range want {
		if ord[0][k] != j {
			t.Fatalf("ordering = %v, want %v", ord[0], want)
		}
	}
}

func TestRankInfeasibleBySmallerViolation(t *testing.T) {
	Z := [][]float64{{0.1}, {0.2}, {0.3}}
	viol := map[int]float64{0: 5.0, 1: 1.0, 2: 3.0}
	ord := RankNeighborhoods(Z, func(j, _ int) float64 { return viol[j] })
	want := []int{1, 2, 0}
	for k, j := range want {
		if ord[0][k] != j {
			t.Fatalf("ordering = %v, want %v", ord[0], want)
		}
	}
}

func TestPenaltyAdjust(t *testing.T) {
	pol, err := New(config.ConstraintConfig{Name: "penalty", Beta: 10})
	if err != nil {
		t.Fatal(err)
	}
	Z := [][]float64{{1, 1}}
	out := pol.Adjust(Z, func(_, i int) float64 { return float64(i) })
	if out[0][0] != 1 || out[0][1] != 11 {
		t.Errorf("penalized = %v, want [1 11]", out[0])
	}
	// The input matrix stays untouched.
	if Z[0][1] != 1 {
		t.Error("Adjust mutated its input")
	}
}

func TestNewUnknownPolicy(t *testing.T) {
	if _, err := New(config.ConstraintConfig{Name: "repairx"}); err == nil {
		t.Error("want error for unknown constraint policy")
	}
}
