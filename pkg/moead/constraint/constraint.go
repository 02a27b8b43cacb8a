// Package constraint computes per-row violation bookkeeping, applies the
// configured constraint handling policy to scalarized fitness, and performs
// the feasibility-first neighborhood ranking the update phase consumes.
package constraint

import (
	"fmt"
	"math"
	"sort"

	"github.com/decompopt/moead/apis/config"
	"github.com/decompopt/moead/pkg/moead/framework"
)

// Evaluate computes the raw constraint values and aggregate violations of X
// (problem-native scale). Returns nil for unconstrained problems.
func Evaluate(p framework.Problem, X [][]float64) *framework.ViolationInfo {
	cons := p.Constraints()
	if len(cons) == 0 {
		return nil
	}
	raw := make([][]float64, len(X))
	total := make([]float64, len(X))
	for i, x := range X {
		raw[i] = make([]float64, len(cons))
		for c, g := range cons {
			v := g(x)
			raw[i][c] = v
			total[i] += math.Max(0, v)
		}
	}
	return &framework.ViolationInfo{Raw: raw, Total: total}
}

// EvaluateRows recomputes the violation rows at the given indices into dst,
// leaving the other rows untouched. dst may be nil for unconstrained problems.
func EvaluateRows(p framework.Problem, dst *framework.ViolationInfo, X [][]float64, rows []int) {
	cons := p.Constraints()
	if len(cons) == 0 || dst == nil {
		return
	}
	for _, i := range rows {
		dst.Total[i] = 0
		for c, g := range cons {
			v := g(X[i])
			dst.Raw[i][c] = v
			dst.Total[i] += math.Max(0, v)
		}
	}
}

// Policy adjusts the scalarization matrix for constraint handling before
// ranking. candViolation returns the aggregate violation of candidate j of
// subproblem i (j == T is the incumbent).
type Policy interface {
	Name() string
	Adjust(Z [][]float64, candViolation func(j, i int) float64) [][]float64
}

// New resolves a constraint policy by name.
func New(cfg config.ConstraintConfig) (Policy, error) {
	switch cfg.Name {
	case "none":
		return &None{}, nil
	case "penalty":
		return &Penalty{Beta: cfg.Beta}, nil
	default:
		return nil, fmt.Errorf("constraint: unknown policy %q", cfg.Name)
	}
}

// None leaves the fitness untouched; ranking still prefers feasibility.
type None struct{}

func (*None) Name() string { return "none" }

func (*None) Adjust(Z [][]float64, _ func(j, i int) float64) [][]float64 { return Z }

// Penalty adds Beta times the aggregate violation to each candidate's
// scalarized fitness.
type Penalty struct {
	Beta float64
}

func (*Penalty) Name() string { return "penalty" }

func (p *Penalty) Adjust(Z [][]float64, candViolation func(j, i int) float64) [][]float64 {
	out := make([][]float64, len(Z))
	for j := range Z {
		out[j] = make([]float64, len(Z[j]))
		for i := range Z[j] {
			out[j][i] = Z[j][i] + p.Beta*candViolation(j, i)
		}
	}
	return out
}

// RankNeighborhoods orders, per subproblem, the T+1 candidate positions of
// the scalarization matrix best-first: feasible candidates strictly above
// infeasible ones, infeasible candidates by ascending violation, and
// ascending fitness beyond that. Position indices run 0..T, with T the
// incumbent.
func RankNeighborhoods(Z [][]float64, candViolation func(j, i int) float64) [][]int {
	if len(Z) == 0 {
		return nil
	}
	rows, n := len(Z), len(Z[0])
	ord := make([][]int, n)
	for i := 0; i < n; i++ {
		o := make([]int, rows)
		for j := range o {
			o[j] = j
		}
		sort.SliceStable(o, func(a, b int) bool {
			ja, jb := o[a], o[b]
			va, vb := candViolation(ja, i), candViolation(jb, i)
			if (va == 0) != (vb == 0) {
				return va == 0
			}
			if va != vb {
				return va < vb
			}
			return Z[ja][i] < Z[jb][i]
		})
		ord[i] = o
	}
	return ord
}
