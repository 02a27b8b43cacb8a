// Package decomposition produces the weight matrix that anchors the
// subproblems: one row per subproblem, each row a point on the unit simplex.
package decomposition

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/decompopt/moead/apis/config"
)

// Method generates a weight matrix with one column per objective. The matrix
// is fixed for the whole run.
type Method interface {
	Name() string
	Generate(rng *rand.Rand, numObjectives int) ([][]float64, error)
}

// New resolves a decomposition strategy by name.
func New(cfg config.DecompositionConfig) (Method, error) {
	switch cfg.Name {
	case "sld":
		if cfg.H < 1 {
			return nil, fmt.Errorf("decomposition: sld needs h >= 1, got %d", cfg.H)
		}
		return &SLD{H: cfg.H}, nil
	case "uniform":
		if cfg.N < 1 {
			return nil, fmt.Errorf("decomposition: uniform needs n >= 1, got %d", cfg.N)
		}
		return &Uniform{N: cfg.N}, nil
	default:
		return nil, fmt.Errorf("decomposition: unknown strategy %q", cfg.Name)
	}
}

// Supplied wraps a pre-computed weight matrix so it satisfies Method. The
// matrix is dimension-checked against the problem at generation time.
type Supplied struct {
	W [][]float64
}

func (s *Supplied) Name() string { return "supplied" }

func (s *Supplied) Generate(_ *rand.Rand, numObjectives int) ([][]float64, error) {
	if len(s.W) == 0 {
		return nil, fmt.Errorf("decomposition: supplied weight matrix is empty")
	}
	for i, row := range s.W {
		if len(row) != numObjectives {
			return nil, fmt.Errorf("decomposition: supplied weight row %d has %d columns, problem has %d objectives", i, len(row), numObjectives)
		}
	}
	return s.W, nil
}

// SLD is the simplex-lattice design: every composition of H into M
// non-negative parts, divided by H. It yields C(H+M-1, M-1) weight vectors.
type SLD struct {
	H int
}

func (s *SLD) Name() string { return "sld" }

// NumWeights returns the lattice size for m objectives without generating it.
func (s *SLD) NumWeights(m int) int {
	return combin.Binomial(s.H+m-1, m-1)
}

func (s *SLD) Generate(_ *rand.Rand, numObjectives int) ([][]float64, error) {
	if numObjectives < 2 {
		return nil, fmt.Errorf("decomposition: sld needs at least 2 objectives, got %d", numObjectives)
	}
	n := s.NumWeights(numObjectives)
	W := make([][]float64, 0, n)
	row := make([]int, numObjectives)
	var walk func(pos, left int)
	walk = func(pos, left int) {
		if pos == numObjectives-1 {
			row[pos] = left
			w := make([]float64, numObjectives)
			for k, v := range row {
				w[k] = float64(v) / float64(s.H)
			}
			W = append(W, w)
			return
		}
		for v := 0; v <= left; v++ {
			row[pos] = v
			walk(pos+1, left-v)
		}
	}
	walk(0, s.H)
	if len(W) != n {
		return nil, fmt.Errorf("decomposition: sld produced %d weights, expected %d", len(W), n)
	}
	return W, nil
}

// Uniform samples N weight vectors uniformly on the unit simplex, by
// normalizing exponential draws.
type Uniform struct {
	N int
}

func (u *Uniform) Name() string { return "uniform" }

func (u *Uniform) Generate(rng *rand.Rand, numObjectives int) ([][]float64, error) {
	if rng == nil {
		return nil, fmt.Errorf("decomposition: uniform needs a random source")
	}
	W := make([][]float64, u.N)
	for i := range W {
		w := make([]float64, numObjectives)
		sum := 0.0
		for k := range w {
			w[k] = rng.ExpFloat64()
			sum += w[k]
		}
		for k := range w {
			w[k] /= sum
		}
		W[i] = w
	}
	return W, nil
}
