package variation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"k8s.io/klog/v2"

	"github.com/decompopt/moead/apis/config"
	"github.com/decompopt/moead/pkg/moead/framework"
)

func testSetup(n, d int) ([][]float64, []int, *framework.NeighborTables) {
	X := make([][]float64, n)
	for i := range X {
		X[i] = make([]float64, d)
		for j := range X[i] {
			X[i][j] = float64(i) / float64(n)
		}
	}
	active := make([]int, n)
	B := make([][]int, n)
	P := make([]float64, n)
	for i := range active {
		active[i] = i
		B[i] = []int{i, (i + 1) % n, (i + 2) % n}
		P[i] = 1
	}
	return X, active, &framework.NeighborTables{B: B, P: P}
}

func newCtx(seed int64) *framework.RunContext {
	return framework.NewRunContext(seed, klog.Background())
}

func TestStackShapeAndParentIntegrity(t *testing.T) {
	X, active, tables := testSetup(8, 5)
	before := framework.CloneMatrix(X)

	stack, err := NewStack([]config.OperatorConfig{
		{Name: "sbx", Pc: 1, EtaX: 20},
		{Name: "polymut", EtaM: 20},
		{Name: "truncate"},
	})
	if err != nil {
		t.Fatal(err)
	}
	off, nfe, err := stack.Apply(newCtx(3), X, active, tables)
	if err != nil {
		t.Fatal(err)
	}
	if nfe != 0 {
		t.Errorf("operator stack reported %d evaluations, want 0", nfe)
	}
	if len(off) != len(active) || len(off[0]) != 5 {
		t.Fatalf("offspring shape %dx%d, want %dx5", len(off), len(off[0]), len(active))
	}
	// Variation must never mutate the parents it reads.
	if diff := cmp.Diff(before, X); diff != "" {
		t.Errorf("parent population mutated:\n%s", diff)
	}
}

func TestStackRestrictsToActiveSubset(t *testing.T) {
	X, _, tables := testSetup(8, 5)
	active := []int{1, 4, 6}
	stack, _ := NewStack([]config.OperatorConfig{{Name: "diffmut", Phi: 0.5}, {Name: "truncate"}})
	off, _, err := stack.Apply(newCtx(9), X, active, tables)
	if err != nil {
		t.Fatal(err)
	}
	if len(off) != 3 {
		t.Errorf("want 3 offspring rows, got %d", len(off))
	}
}

func TestTruncateClampsToUnitBox(t *testing.T) {
	X, active, tables := testSetup(6, 4)
	stack, _ := NewStack([]config.OperatorConfig{{Name: "diffmut", Phi: 10}, {Name: "truncate"}})
	off, _, err := stack.Apply(newCtx(5), X, active, tables)
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range off {
		for j, v := range row {
			if v < 0 || v > 1 {
				t.Errorf("offspring[%d][%d] = %v outside [0,1]", i, j, v)
			}
		}
	}
}

func TestBinrecKeepsAtLeastOneOffspringVariable(t *testing.T) {
	X, active, tables := testSetup(6, 4)
	// Rho 0 would copy the incumbent wholesale were it not for jrand.
	stack, _ := NewStack([]config.OperatorConfig{{Name: "diffmut", Phi: 0.7}, {Name: "binrec", Rho: 0}})
	off, _, err := stack.Apply(newCtx(11), X, active, tables)
	if err != nil {
		t.Fatal(err)
	}
	for k, i := range active {
		same := 0
		for j := range off[k] {
			if off[k][j] == X[i][j] {
				same++
			}
		}
		if same == len(off[k]) {
			t.Errorf("row %d: binrec produced a clone of the incumbent", k)
		}
	}
}

func TestStackDeterminism(t *testing.T) {
	X, active, tables := testSetup(10, 6)
	cfg := []config.OperatorConfig{
		{Name: "sbx", Pc: 0.9, EtaX: 15},
		{Name: "polymut", Pm: 0.2, EtaM: 20},
		{Name: "truncate"},
	}
	s1, _ := NewStack(cfg)
	s2, _ := NewStack(cfg)
	o1, _, _ := s1.Apply(newCtx(42), X, active, tables)
	o2, _, _ := s2.Apply(newCtx(42), X, active, tables)
	if diff := cmp.Diff(o1, o2); diff != "" {
		t.Errorf("same seed produced different offspring:\n%s", diff)
	}
}

func TestNewStackErrors(t *testing.T) {
	if _, err := NewStack(nil); err == nil {
		t.Error("want error for empty stack")
	}
	if _, err := NewStack([]config.OperatorConfig{{Name: "warp"}}); err == nil {
		t.Error("want error for unknown operator")
	}
}

func TestApplyEmptyActiveSet(t *testing.T) {
	X, _, tables := testSetup(6, 4)
	stack, _ := NewStack([]config.OperatorConfig{{Name: "truncate"}})
	if _, _, err := stack.Apply(newCtx(1), X, nil, tables); err == nil {
		t.Error("want error for empty active set")
	}
}
