package decomposition

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/decompopt/moead/apis/config"
)

func TestSLDLatticeSize(t *testing.T) {
	cases := []struct {
		h, m, want int
	}{
		{49, 2, 50},
		{99, 2, 100},
		{4, 3, 15},
		{12, 3, 91},
	}
	for _, c := range cases {
		s := &SLD{H: c.h}
		W, err := s.Generate(nil, c.m)
		if err != nil {
			t.Fatalf("sld H=%d m=%d: %v", c.h, c.m, err)
		}
		if len(W) != c.want {
			t.Errorf("sld H=%d m=%d: want %d weights, got %d", c.h, c.m, c.want, len(W))
		}
		if got := s.NumWeights(c.m); got != c.want {
			t.Errorf("NumWeights(%d) = %d, want %d", c.m, got, c.want)
		}
	}
}

func TestSLDRowsOnSimplex(t *testing.T) {
	s := &SLD{H: 17}
	W, err := s.Generate(nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range W {
		sum := 0.0
		for _, w := range row {
			if w < 0 || w > 1 {
				t.Fatalf("row %d: component %v outside [0,1]", i, w)
			}
			sum += w
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("row %d sums to %v, want 1", i, sum)
		}
	}
}

func TestSLDContainsExtremes(t *testing.T) {
	s := &SLD{H: 10}
	W, _ := s.Generate(nil, 2)
	found := 0
	for _, row := range W {
		if row[0] == 1 || row[1] == 1 {
			found++
		}
	}
	if found != 2 {
		t.Errorf("want 2 extreme weight vectors, found %d", found)
	}
}

func TestUniformOnSimplex(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	u := &Uniform{N: 40}
	W, err := u.Generate(rng, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(W) != 40 {
		t.Fatalf("want 40 rows, got %d", len(W))
	}
	for i, row := range W {
		sum := 0.0
		for _, w := range row {
			sum += w
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("row %d sums to %v", i, sum)
		}
	}
}

func TestSuppliedDimensionCheck(t *testing.T) {
	s := &Supplied{W: [][]float64{{0.5, 0.5}, {1, 0}}}
	if _, err := s.Generate(nil, 3); err == nil {
		t.Error("want error for 2-column weights on a 3-objective problem")
	}
	if _, err := s.Generate(nil, 2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewUnknownStrategy(t *testing.T) {
	if _, err := New(config.DecompositionConfig{Name: "bogus"}); err == nil {
		t.Error("want error for unknown decomposition strategy")
	}
	if _, err := New(config.DecompositionConfig{Name: "sld", H: 0}); err == nil {
		t.Error("want error for sld with h=0")
	}
}
