// Package variation implements the ordered operator stack that turns the
// active subproblems' parents into offspring. Operators work in the
// normalized [0,1] decision space and mutate the working offspring matrix in
// place, one active row per active subproblem.
package variation

import (
	"fmt"

	"github.com/decompopt/moead/apis/config"
	"github.com/decompopt/moead/pkg/moead/framework"
)

// Operand is the state one operator application sees: the full population
// for parent lookups, the working offspring rows for the active subset, and
// the neighbor tables governing where parents come from.
type Operand struct {
	X         [][]float64
	Offspring [][]float64
	Active    []int
	Tables    *framework.NeighborTables
}

// Operator transforms the offspring rows in place and reports how many
// objective evaluations it spent internally (zero for all the operators
// here; the contract exists for operators with embedded local search).
type Operator interface {
	Name() string
	Apply(ctx *framework.RunContext, op *Operand) (int, error)
}

// Stack is the configured operator sequence.
type Stack struct {
	ops []Operator
}

// NewStack resolves the operator list by name, preserving order.
func NewStack(cfgs []config.OperatorConfig) (*Stack, error) {
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("variation: empty operator stack")
	}
	ops := make([]Operator, len(cfgs))
	for i, c := range cfgs {
		switch c.Name {
		case "sbx":
			ops[i] = &SBX{Pc: c.Pc, Eta: c.EtaX}
		case "polymut":
			ops[i] = &PolynomialMutation{Pm: c.Pm, Eta: c.EtaM}
		case "diffmut":
			ops[i] = &DifferentialMutation{Phi: c.Phi}
		case "binrec":
			ops[i] = &BinomialRecombination{Rho: c.Rho}
		case "truncate":
			ops[i] = &Truncate{}
		default:
			return nil, fmt.Errorf("variation: unknown operator %q at position %d", c.Name, i)
		}
	}
	return &Stack{ops: ops}, nil
}

// Apply runs the stack over the active subset of X. The returned matrix has
// one row per active index, in active order; the int is the summed
// evaluation count the operators reported.
func (s *Stack) Apply(ctx *framework.RunContext, X [][]float64, active []int, tables *framework.NeighborTables) ([][]float64, int, error) {
	if len(active) == 0 {
		return nil, 0, fmt.Errorf("variation: empty active set")
	}
	off := make([][]float64, len(active))
	for k, i := range active {
		off[k] = append([]float64(nil), X[i]...)
	}
	op := &Operand{X: X, Offspring: off, Active: active, Tables: tables}
	nfe := 0
	for _, o := range s.ops {
		d, err := o.Apply(ctx, op)
		if err != nil {
			return nil, 0, fmt.Errorf("variation: %s: %w", o.Name(), err)
		}
		nfe += d
	}
	return op.Offspring, nfe, nil
}

// matingPool returns the index set parents of subproblem i are drawn from:
// the neighborhood of i with probability P[i], the whole population
// otherwise. The draw itself consumes one value from the run's stream.
func matingPool(ctx *framework.RunContext, op *Operand, i int) []int {
	if ctx.RNG.Float64() < op.Tables.P[i] {
		return op.Tables.B[i]
	}
	all := make([]int, len(op.X))
	for j := range all {
		all[j] = j
	}
	return all
}

// pickDistinct draws k pairwise-distinct indices from pool.
func pickDistinct(ctx *framework.RunContext, pool []int, k int) []int {
	out := make([]int, 0, k)
	for len(out) < k {
		c := pool[ctx.RNG.IntN(len(pool))]
		seen := false
		for _, v := range out {
			if v == c {
				seen = true
				break
			}
		}
		if !seen || len(pool) <= k {
			out = append(out, c)
		}
	}
	return out
}
