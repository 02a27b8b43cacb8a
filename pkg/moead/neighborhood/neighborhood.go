// Package neighborhood builds the per-iteration neighbor tables: for each
// subproblem, the T most similar subproblems by Euclidean distance, measured
// either on the fixed weight vectors or on the current incumbents.
package neighborhood

import (
	"fmt"
	"sort"

	"github.com/decompopt/moead/apis/config"
	"github.com/decompopt/moead/pkg/moead/framework"
)

// SourceLambda builds the tables from the weight matrix; the result is
// identical every iteration. SourceX rebuilds from the evolving incumbents.
const (
	SourceLambda = "lambda"
	SourceX      = "x"
)

// Builder computes neighbor and mating-probability tables. The orchestrator
// invokes it twice per iteration (before and after variation) so dynamic
// neighborhoods always reflect the incumbents about to be compared.
type Builder struct {
	Source string
	T      int
	Delta  float64
}

// New resolves a neighborhood builder, validating its parameters against the
// population size.
func New(cfg config.NeighborhoodConfig, numSubproblems int) (*Builder, error) {
	switch cfg.Name {
	case SourceLambda, SourceX:
	default:
		return nil, fmt.Errorf("neighborhood: unknown similarity source %q", cfg.Name)
	}
	if cfg.T < 1 || cfg.T >= numSubproblems {
		return nil, fmt.Errorf("neighborhood: need 0 < T < N, got T=%d N=%d", cfg.T, numSubproblems)
	}
	if cfg.Delta < 0 || cfg.Delta > 1 {
		return nil, fmt.Errorf("neighborhood: delta must be in [0,1], got %v", cfg.Delta)
	}
	return &Builder{Source: cfg.Name, T: cfg.T, Delta: cfg.Delta}, nil
}

// Similarity picks the matrix the tables are computed from.
func (b *Builder) Similarity(W, X [][]float64) [][]float64 {
	if b.Source == SourceX {
		return X
	}
	return W
}

// Build computes the tables from the given similarity matrix at the builder's
// configured neighborhood size.
func (b *Builder) Build(similarity [][]float64) (*framework.NeighborTables, error) {
	return b.BuildWithSize(similarity, b.T)
}

// BuildWithSize computes the tables at an explicit size. The reduced-pressure
// ranking mode uses it with size 1; everything else goes through Build.
func (b *Builder) BuildWithSize(similarity [][]float64, size int) (*framework.NeighborTables, error) {
	n := len(similarity)
	if size < 1 || size >= n {
		return nil, fmt.Errorf("neighborhood: need 0 < size < N, got size=%d N=%d", size, n)
	}
	B := make([][]int, n)
	order := make([]int, n)
	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			order[j] = j
			dist[j] = framework.RowDistance(similarity[i], similarity[j])
		}
		// Stable tie-break on index keeps the tables deterministic when
		// several rows are equidistant.
		sort.SliceStable(order, func(a, c int) bool {
			return dist[order[a]] < dist[order[c]]
		})
		B[i] = append([]int(nil), order[:size]...)
	}
	P := make([]float64, n)
	for i := range P {
		P[i] = b.Delta
	}
	return &framework.NeighborTables{B: B, P: P}, nil
}
