package update

import (
	"testing"

	"github.com/decompopt/moead/pkg/moead/framework"
)

func TestArchiveDropsDominatedAndInfeasible(t *testing.T) {
	a := NewArchive(10)
	pop := &framework.Population{
		X: [][]float64{{0.1}, {0.2}, {0.3}, {0.4}},
		Y: [][]float64{{1, 4}, {2, 2}, {3, 3}, {4, 1}},
		V: &framework.ViolationInfo{
			Raw:   [][]float64{{0}, {0}, {0}, {5}},
			Total: []float64{0, 0, 0, 5},
		},
	}
	a.Ingest(pop, []int{0, 1, 2, 3})

	// Row 2 is dominated by row 1; row 3 is infeasible.
	if len(a.Y) != 2 {
		t.Fatalf("archive size %d, want 2: %v", len(a.Y), a.Y)
	}
	for i := range a.Y {
		for j := range a.Y {
			if i != j && framework.Dominates(a.Y[i], a.Y[j]) {
				t.Errorf("archive holds dominated member: %v dominates %v", a.Y[i], a.Y[j])
			}
		}
		if a.V[i] != 0 {
			t.Errorf("archive member %d infeasible: violation %v", i, a.V[i])
		}
	}
}

func TestArchiveRespectsCap(t *testing.T) {
	a := NewArchive(5)
	n := 20
	pop := &framework.Population{
		X: make([][]float64, n),
		Y: make([][]float64, n),
	}
	rows := make([]int, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		pop.X[i] = []float64{f}
		// A mutually nondominated line, so the cap is what prunes.
		pop.Y[i] = []float64{f, 1 - f}
		rows[i] = i
	}
	a.Ingest(pop, rows)
	if len(a.Y) != 5 {
		t.Fatalf("archive size %d, want cap 5", len(a.Y))
	}
	// Crowding pruning keeps the extremes.
	hasMin, hasMax := false, false
	for _, y := range a.Y {
		if y[0] == 0 {
			hasMin = true
		}
		if y[0] == 1 {
			hasMax = true
		}
	}
	if !hasMin || !hasMax {
		t.Errorf("boundary members pruned: %v", a.Y)
	}
}

func TestArchiveIngestAcrossIterations(t *testing.T) {
	a := NewArchive(10)
	pop := &framework.Population{
		X: [][]float64{{0.1}, {0.2}},
		Y: [][]float64{{2, 2}, {5, 5}},
	}
	a.Ingest(pop, []int{0, 1})
	if len(a.Y) != 1 {
		t.Fatalf("archive size %d, want 1", len(a.Y))
	}

	// A later iteration offers a dominating point; the pool is re-filtered.
	pop2 := &framework.Population{
		X: [][]float64{{0.3}},
		Y: [][]float64{{1, 1}},
	}
	a.Ingest(pop2, []int{0})
	if len(a.Y) != 1 || a.Y[0][0] != 1 {
		t.Errorf("archive = %v, want the dominating point only", a.Y)
	}
}

func TestArchiveSnapshotDenormalizes(t *testing.T) {
	a := NewArchive(4)
	pop := &framework.Population{
		X: [][]float64{{0.5}},
		Y: [][]float64{{1, 1}},
	}
	a.Ingest(pop, []int{0})
	snap := a.Snapshot([]framework.Bounds{{L: 0, H: 10}})
	if snap.X[0][0] != 5 {
		t.Errorf("snapshot X = %v, want 5", snap.X[0][0])
	}
}
