// Package scalarization turns normalized objective vectors into the
// per-neighborhood fitness matrix the ranking and update phases consume.
//
// The output always has T+1 rows and N columns: entry (j, i) for j < T is
// the fitness of subproblem i's j-th neighbor under weight vector i, and row
// T is the fitness of i's own incumbent.
package scalarization

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/decompopt/moead/apis/config"
	"github.com/decompopt/moead/pkg/moead/framework"
)

// Aggregator combines one normalized objective vector with one weight vector
// into a scalar fitness. The ideal point is the column-wise minimum of the
// matrix being scalarized.
type Aggregator interface {
	Name() string
	Aggregate(y, w, ideal []float64) float64
}

// New resolves an aggregation formula by name.
func New(cfg config.AggregationConfig) (Aggregator, error) {
	switch cfg.Name {
	case "ws":
		return &WeightedSum{}, nil
	case "wt":
		return &WeightedTchebycheff{}, nil
	case "pbi":
		theta := cfg.Theta
		if theta == 0 {
			theta = 5
		}
		return &PBI{Theta: theta}, nil
	default:
		return nil, fmt.Errorf("scalarization: unknown aggregation %q", cfg.Name)
	}
}

// Matrix builds the (T+1) x N scalarization matrix: the first T rows
// aggregate the neighbors' rows of normY under each subproblem's weight
// vector, the last row aggregates the incumbent from normPrev. A nil
// normPrev (first iteration) falls back to normY for the incumbent row.
func Matrix(agg Aggregator, normY, normPrev, W [][]float64, B [][]int) ([][]float64, error) {
	n := len(W)
	if len(normY) != n || len(B) != n {
		return nil, fmt.Errorf("scalarization: misaligned inputs: |Y|=%d |W|=%d |B|=%d", len(normY), n, len(B))
	}
	incumbent := normPrev
	if incumbent == nil {
		incumbent = normY
	}
	t := len(B[0])
	pool := normY
	if normPrev != nil {
		pool = append(framework.CloneMatrix(normY), normPrev...)
	}
	ideal, _ := framework.IdealNadir(pool, nil)

	Z := make([][]float64, t+1)
	for j := range Z {
		Z[j] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j, nb := range B[i] {
			Z[j][i] = agg.Aggregate(normY[nb], W[i], ideal)
		}
		Z[t][i] = agg.Aggregate(incumbent[i], W[i], ideal)
	}
	return Z, nil
}

// WeightedSum is the plain inner product of weights and objectives.
type WeightedSum struct{}

func (*WeightedSum) Name() string { return "ws" }

func (*WeightedSum) Aggregate(y, w, _ []float64) float64 {
	return floats.Dot(w, y)
}

// WeightedTchebycheff is max_k w_k * |y_k - z*_k|, with a small floor on the
// weights so zero-weight components still break ties.
type WeightedTchebycheff struct{}

func (*WeightedTchebycheff) Name() string { return "wt" }

func (*WeightedTchebycheff) Aggregate(y, w, ideal []float64) float64 {
	const eps = 1e-6
	best := math.Inf(-1)
	for k := range y {
		wk := math.Max(w[k], eps)
		if v := wk * math.Abs(y[k]-ideal[k]); v > best {
			best = v
		}
	}
	return best
}

// PBI is penalty boundary intersection: projection distance along the weight
// direction plus Theta times the perpendicular distance to it.
type PBI struct {
	Theta float64
}

func (*PBI) Name() string { return "pbi" }

func (p *PBI) Aggregate(y, w, ideal []float64) float64 {
	norm := floats.Norm(w, 2)
	if norm == 0 {
		norm = 1
	}
	d1 := 0.0
	for k := range y {
		d1 += (y[k] - ideal[k]) * w[k]
	}
	d1 = math.Abs(d1) / norm

	d2 := 0.0
	for k := range y {
		v := y[k] - (ideal[k] + d1*w[k]/norm)
		d2 += v * v
	}
	return d1 + p.Theta*math.Sqrt(d2)
}
