// Package scaling normalizes objective matrices before scalarization,
// tracking ideal and nadir estimates over the current and previous
// iteration's populations.
package scaling

import (
	"fmt"

	"github.com/decompopt/moead/apis/config"
	"github.com/decompopt/moead/pkg/moead/framework"
)

// Scaler maps the current and previous objective matrices into the space
// scalarization works in. Both matrices are normalized with the same bounds
// so neighbor rows and incumbent rows stay comparable; prevY may be nil on
// the first iteration, in which case normPrev is nil too.
type Scaler interface {
	Name() string
	Scale(Y, prevY [][]float64) (norm, normPrev [][]float64, err error)
}

// New resolves a scaling policy by name.
func New(cfg config.ScalingConfig) (Scaler, error) {
	switch cfg.Name {
	case "none":
		return &None{}, nil
	case "simple":
		return &Simple{}, nil
	default:
		return nil, fmt.Errorf("scaling: unknown policy %q", cfg.Name)
	}
}

// None passes the objectives through untouched.
type None struct{}

func (*None) Name() string { return "none" }

func (*None) Scale(Y, prevY [][]float64) ([][]float64, [][]float64, error) {
	return Y, prevY, nil
}

// Simple linearly rescales each objective to [0,1] using the ideal and nadir
// over the union of the current and previous objective matrices. A column
// with zero range maps to zero.
type Simple struct{}

func (*Simple) Name() string { return "simple" }

func (*Simple) Scale(Y, prevY [][]float64) ([][]float64, [][]float64, error) {
	pool := Y
	if prevY != nil {
		pool = append(framework.CloneMatrix(Y), prevY...)
	}
	ideal, nadir := framework.IdealNadir(pool, nil)

	rescale := func(src [][]float64) [][]float64 {
		if src == nil {
			return nil
		}
		out := make([][]float64, len(src))
		for i, row := range src {
			out[i] = make([]float64, len(row))
			for k, v := range row {
				if r := nadir[k] - ideal[k]; r > 0 {
					out[i][k] = (v - ideal[k]) / r
				}
			}
		}
		return out
	}
	return rescale(Y), rescale(prevY), nil
}
