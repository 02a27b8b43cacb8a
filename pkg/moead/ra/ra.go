// Package ra implements resource allocation: which subproblems receive
// variation and evaluation in an iteration, and how per-subproblem priority
// scores evolve across iterations. The orchestrator owns the state; the
// strategies only read and return replacements.
package ra

import (
	"fmt"
	"math"
	"sort"

	"github.com/decompopt/moead/apis/config"
	"github.com/decompopt/moead/pkg/moead/framework"
)

// State is the scheduler state the orchestrator carries across iterations:
// priority scores, a fixed-depth ring buffer of scalarization snapshots for
// lag-based comparison, delayed population snapshots, and the cumulative
// per-subproblem usage record.
type State struct {
	Priority []float64
	Usage    []int

	PrevX [][]float64
	PrevY [][]float64

	depth  int
	window [][][]float64
	filled []bool
	latest [][]float64
}

// NewState initializes uniform priorities over n subproblems with a lag
// window of the given depth.
func NewState(n, depth int) *State {
	if depth < 1 {
		depth = 1
	}
	pri := make([]float64, n)
	for i := range pri {
		pri[i] = 1
	}
	return &State{
		Priority: pri,
		Usage:    make([]int, n),
		depth:    depth,
		window:   make([][][]float64, depth),
		filled:   make([]bool, depth),
	}
}

// Push stores iteration iter's scalarization matrix at slot iter mod depth.
func (s *State) Push(iter int, Z [][]float64) {
	slot := iter % s.depth
	s.window[slot] = Z
	s.filled[slot] = true
	s.latest = Z
}

// Delayed reads the snapshot at (iter-1) mod depth. A slot the window has
// not filled yet degrades to the current snapshot rather than nil.
func (s *State) Delayed(iter int) [][]float64 {
	slot := ((iter-1)%s.depth + s.depth) % s.depth
	if !s.filled[slot] {
		return s.latest
	}
	return s.window[slot]
}

// Strategy is the pluggable allocation policy. Select returns the active
// index subset for this iteration (ascending); Update returns refreshed
// priority scores from the current and delayed scalarization snapshots and
// populations.
type Strategy interface {
	Name() string
	Select(ctx *framework.RunContext, st *State, boundary []int) ([]int, error)
	Update(st *State, curZ, delayedZ [][]float64, T int, Y, prevY, W, X, prevX [][]float64) ([]float64, error)
}

// New resolves an allocation strategy by name.
func New(cfg config.ResourceConfig) (Strategy, error) {
	switch cfg.Name {
	case "none":
		return &None{}, nil
	case "random":
		if cfg.Fraction < 0 || cfg.Fraction > 1 {
			return nil, fmt.Errorf("ra: random fraction must be in [0,1], got %v", cfg.Fraction)
		}
		return &Random{Fraction: cfg.Fraction}, nil
	case "relative":
		return &Relative{}, nil
	default:
		return nil, fmt.Errorf("ra: unknown strategy %q", cfg.Name)
	}
}

// None keeps every subproblem active and never touches priorities.
type None struct{}

func (*None) Name() string { return "none" }

func (*None) Select(_ *framework.RunContext, st *State, _ []int) ([]int, error) {
	return allIndices(len(st.Priority)), nil
}

func (*None) Update(st *State, _, _ [][]float64, _ int, _, _, _, _, _ [][]float64) ([]float64, error) {
	return st.Priority, nil
}

// Random activates the boundary subproblems plus a uniform sample of the
// rest, sized by Fraction. Priorities stay untouched.
type Random struct {
	Fraction float64
}

func (*Random) Name() string { return "random" }

func (r *Random) Select(ctx *framework.RunContext, st *State, boundary []int) ([]int, error) {
	n := len(st.Priority)
	if r.Fraction == 0 || r.Fraction == 1 {
		return allIndices(n), nil
	}
	want := int(math.Ceil(r.Fraction * float64(n)))
	picked := make(map[int]bool, want)
	for _, b := range boundary {
		picked[b] = true
	}
	for len(picked) < want {
		picked[ctx.RNG.IntN(n)] = true
	}
	return sortedKeys(picked), nil
}

func (*Random) Update(st *State, _, _ [][]float64, _ int, _, _, _, _, _ [][]float64) ([]float64, error) {
	return st.Priority, nil
}

// Relative scores each subproblem by the relative improvement of its
// incumbent's scalarized fitness against the lag-window delayed snapshot,
// and activates subproblems Bernoulli-style by score. Boundary subproblems
// are always active. Priorities start uniform, so the first iteration runs
// the whole population.
type Relative struct{}

func (*Relative) Name() string { return "relative" }

func (*Relative) Select(ctx *framework.RunContext, st *State, boundary []int) ([]int, error) {
	n := len(st.Priority)
	picked := make(map[int]bool, n)
	for _, b := range boundary {
		picked[b] = true
	}
	for i := 0; i < n; i++ {
		if picked[i] {
			continue
		}
		if ctx.RNG.Float64() < st.Priority[i] {
			picked[i] = true
		}
	}
	return sortedKeys(picked), nil
}

func (*Relative) Update(st *State, curZ, delayedZ [][]float64, t int, _, _, _, _, _ [][]float64) ([]float64, error) {
	if len(curZ) != t+1 || len(delayedZ) != t+1 {
		return nil, fmt.Errorf("ra: relative: want %d scalarization rows, got %d and %d", t+1, len(curZ), len(delayedZ))
	}
	// Never let a priority reach zero, or a subproblem starves forever.
	const floor = 0.05
	n := len(st.Priority)
	u := make([]float64, n)
	maxU := 0.0
	for i := 0; i < n; i++ {
		old, cur := delayedZ[t][i], curZ[t][i]
		if d := math.Max(math.Abs(old), 1e-12); old-cur > 0 {
			u[i] = (old - cur) / d
		}
		maxU = math.Max(maxU, u[i])
	}
	pri := make([]float64, n)
	for i := range pri {
		if maxU == 0 {
			pri[i] = 1
		} else {
			pri[i] = math.Max(floor, u[i]/maxU)
		}
	}
	return pri, nil
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Boundary returns the indices of the extreme weight vectors, the rows of W
// with a component equal to one. Those subproblems anchor the objective-wise
// optima and stay active under every allocation strategy.
func Boundary(W [][]float64) []int {
	var out []int
	for i, row := range W {
		for _, w := range row {
			if w == 1 {
				out = append(out, i)
				break
			}
		}
	}
	return out
}
