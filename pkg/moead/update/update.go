// Package update applies the replacement policy that turns ranked
// neighborhoods into the next population, and maintains the optional
// external archive of nondominated solutions.
package update

import (
	"fmt"

	"github.com/decompopt/moead/apis/config"
	"github.com/decompopt/moead/pkg/moead/framework"
)

// Updater decides, per subproblem, whether the incumbent survives or which
// working row replaces it. ord is the best-first candidate ordering per
// subproblem (positions 0..T, T being the incumbent), B the neighbor table
// the ordering was computed against, and active the indices eligible for
// replacement this iteration; rows outside active are carried over
// untouched. The returned slice lists the indices whose incumbent changed.
type Updater interface {
	Name() string
	Update(ord [][]int, B [][]int, incumbent, working *framework.Population, active []int) (*framework.Population, []int, error)
}

// New resolves an update policy by name.
func New(cfg config.UpdateConfig) (Updater, error) {
	switch cfg.Name {
	case "standard":
		return &Standard{}, nil
	case "best":
		nr := cfg.Nr
		if nr < 1 {
			nr = 1
		}
		return &Best{Nr: nr}, nil
	default:
		return nil, fmt.Errorf("update: unknown policy %q", cfg.Name)
	}
}

// Standard keeps, for each active subproblem, the best-ranked candidate
// among its neighbors' working rows and its own incumbent.
type Standard struct{}

func (*Standard) Name() string { return "standard" }

func (*Standard) Update(ord [][]int, B [][]int, incumbent, working *framework.Population, active []int) (*framework.Population, []int, error) {
	next := incumbent.Clone()
	t := len(B[0])
	var replaced []int
	for _, i := range active {
		if len(ord[i]) != t+1 {
			return nil, nil, fmt.Errorf("update: subproblem %d: want %d ranked candidates, got %d", i, t+1, len(ord[i]))
		}
		j := ord[i][0]
		if j == t {
			continue // incumbent stays
		}
		adopt(next, working, i, B[i][j])
		replaced = append(replaced, i)
	}
	return next, replaced, nil
}

// Best is Standard with a replacement cap: one working row may replace at
// most Nr incumbents. When a row is exhausted the next-ranked candidate is
// considered instead.
type Best struct {
	Nr int
}

func (*Best) Name() string { return "best" }

func (b *Best) Update(ord [][]int, B [][]int, incumbent, working *framework.Population, active []int) (*framework.Population, []int, error) {
	next := incumbent.Clone()
	t := len(B[0])
	used := make(map[int]int)
	var replaced []int
	for _, i := range active {
		if len(ord[i]) != t+1 {
			return nil, nil, fmt.Errorf("update: subproblem %d: want %d ranked candidates, got %d", i, t+1, len(ord[i]))
		}
		for _, j := range ord[i] {
			if j == t {
				break // incumbent outranks every candidate still available
			}
			src := B[i][j]
			if used[src] >= b.Nr {
				continue
			}
			used[src]++
			adopt(next, working, i, src)
			replaced = append(replaced, i)
			break
		}
	}
	return next, replaced, nil
}

// adopt copies working row src into next row dst.
func adopt(next, working *framework.Population, dst, src int) {
	copy(next.X[dst], working.X[src])
	copy(next.Y[dst], working.Y[src])
	if next.V != nil {
		copy(next.V.Raw[dst], working.V.Raw[src])
		next.V.Total[dst] = working.V.Total[src]
	}
}
