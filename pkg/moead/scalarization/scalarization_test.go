package scalarization

import (
	"math"
	"testing"

	"github.com/decompopt/moead/apis/config"
)

func TestMatrixShape(t *testing.T) {
	n, tsize := 6, 3
	W := make([][]float64, n)
	Y := make([][]float64, n)
	B := make([][]int, n)
	for i := range W {
		f := float64(i) / float64(n-1)
		W[i] = []float64{f, 1 - f}
		Y[i] = []float64{f, 1 - f}
		B[i] = []int{i, (i + 1) % n, (i + 2) % n}
	}
	agg, err := New(config.AggregationConfig{Name: "ws"})
	if err != nil {
		t.Fatal(err)
	}
	Z, err := Matrix(agg, Y, nil, W, B)
	if err != nil {
		t.Fatal(err)
	}
	if len(Z) != tsize+1 {
		t.Fatalf("want %d rows, got %d", tsize+1, len(Z))
	}
	for j, row := range Z {
		if len(row) != n {
			t.Errorf("row %d: want %d columns, got %d", j, n, len(row))
		}
	}
}

func TestWeightedSum(t *testing.T) {
	agg := &WeightedSum{}
	got := agg.Aggregate([]float64{2, 4}, []float64{0.25, 0.75}, nil)
	if want := 0.25*2 + 0.75*4; got != want {
		t.Errorf("ws = %v, want %v", got, want)
	}
}

func TestTchebycheffIdealScoresLowest(t *testing.T) {
	agg := &WeightedTchebycheff{}
	ideal := []float64{0, 0}
	w := []float64{0.5, 0.5}
	atIdeal := agg.Aggregate([]float64{0, 0}, w, ideal)
	away := agg.Aggregate([]float64{1, 0.2}, w, ideal)
	if atIdeal >= away {
		t.Errorf("fitness at ideal (%v) not below fitness away (%v)", atIdeal, away)
	}
	if atIdeal != 0 {
		t.Errorf("fitness at ideal = %v, want 0", atIdeal)
	}
}

func TestPBIPenalizesPerpendicularDistance(t *testing.T) {
	agg := &PBI{Theta: 5}
	ideal := []float64{0, 0}
	w := []float64{1 / math.Sqrt2, 1 / math.Sqrt2}
	onAxis := agg.Aggregate([]float64{0.5, 0.5}, w, ideal)
	offAxis := agg.Aggregate([]float64{0.9, 0.1}, w, ideal)
	if onAxis >= offAxis {
		t.Errorf("on-axis point (%v) should outrank off-axis point (%v)", onAxis, offAxis)
	}
}

// The incumbent row must come from the previous population when one exists.
func TestMatrixIncumbentRowUsesPrevious(t *testing.T) {
	W := [][]float64{{1, 0}, {0, 1}}
	cur := [][]float64{{1, 1}, {1, 1}}
	prev := [][]float64{{2, 2}, {3, 3}}
	B := [][]int{{0}, {1}}
	agg := &WeightedSum{}
	Z, err := Matrix(agg, cur, prev, W, B)
	if err != nil {
		t.Fatal(err)
	}
	if Z[1][0] != 2 || Z[1][1] != 3 {
		t.Errorf("incumbent row = %v, want [2 3]", Z[1])
	}
	if Z[0][0] != 1 || Z[0][1] != 1 {
		t.Errorf("neighbor row = %v, want [1 1]", Z[0])
	}
}

func TestMatrixMisalignedInputs(t *testing.T) {
	agg := &WeightedSum{}
	if _, err := Matrix(agg, [][]float64{{1, 2}}, nil, [][]float64{{1, 0}, {0, 1}}, [][]int{{0}, {1}}); err == nil {
		t.Error("want error for |Y| != |W|")
	}
}

func TestNewUnknownAggregation(t *testing.T) {
	if _, err := New(config.AggregationConfig{Name: "bogus"}); err == nil {
		t.Error("want error for unknown aggregation")
	}
}
