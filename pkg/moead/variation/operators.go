package variation

import (
	"math"

	"github.com/decompopt/moead/pkg/moead/framework"
)

// SBX performs simulated binary crossover: two parents from the mating pool
// produce one child per active row.
type SBX struct {
	Pc  float64
	Eta float64
}

func (s *SBX) Name() string { return "sbx" }

func (s *SBX) Apply(ctx *framework.RunContext, op *Operand) (int, error) {
	exp := 1.0 / (s.Eta + 1.0)
	for k, i := range op.Active {
		pool := matingPool(ctx, op, i)
		parents := pickDistinct(ctx, pool, 2)
		p1, p2 := op.X[parents[0]], op.X[parents[1]]

		child := op.Offspring[k]
		if ctx.RNG.Float64() < s.Pc {
			for j := range child {
				beta := 0.0
				if ctx.RNG.Float64() <= 0.5 {
					beta = math.Pow(2*ctx.RNG.Float64(), exp)
				} else {
					beta = math.Pow(1.0/(2*(1.0-ctx.RNG.Float64())), exp)
				}
				child[j] = 0.5 * ((1+beta)*p1[j] + (1-beta)*p2[j])
			}
		} else {
			copy(child, p1)
		}
	}
	return 0, nil
}

// PolynomialMutation perturbs each variable with probability Pm using the
// polynomial distribution with index Eta. Pm <= 0 means 1/D.
type PolynomialMutation struct {
	Pm  float64
	Eta float64
}

func (m *PolynomialMutation) Name() string { return "polymut" }

func (m *PolynomialMutation) Apply(ctx *framework.RunContext, op *Operand) (int, error) {
	exp := 1.0 / (m.Eta + 1.0)
	for k := range op.Active {
		row := op.Offspring[k]
		pm := m.Pm
		if pm <= 0 {
			pm = 1.0 / float64(len(row))
		}
		for j := range row {
			if ctx.RNG.Float64() < pm {
				delta := 0.0
				if ctx.RNG.Float64() <= 0.5 {
					delta = math.Pow(2*ctx.RNG.Float64(), exp) - 1
				} else {
					delta = 1 - math.Pow(2*(1-ctx.RNG.Float64()), exp)
				}
				row[j] += delta
			}
		}
	}
	return 0, nil
}

// DifferentialMutation builds each offspring row as x_r1 + phi*(x_r2 - x_r3)
// with the three parents drawn from the mating pool. Phi == 0 draws a fresh
// scaling factor per row from (0, 1].
type DifferentialMutation struct {
	Phi float64
}

func (d *DifferentialMutation) Name() string { return "diffmut" }

func (d *DifferentialMutation) Apply(ctx *framework.RunContext, op *Operand) (int, error) {
	for k, i := range op.Active {
		pool := matingPool(ctx, op, i)
		parents := pickDistinct(ctx, pool, 3)
		r1, r2, r3 := op.X[parents[0]], op.X[parents[1]], op.X[parents[2]]

		phi := d.Phi
		if phi == 0 {
			phi = 1.0 - ctx.RNG.Float64()
		}
		row := op.Offspring[k]
		for j := range row {
			row[j] = r1[j] + phi*(r2[j]-r3[j])
		}
	}
	return 0, nil
}

// BinomialRecombination exchanges variables between the working offspring
// and the incumbent of its subproblem: each variable keeps the offspring
// value with probability Rho, except one always-kept position.
type BinomialRecombination struct {
	Rho float64
}

func (b *BinomialRecombination) Name() string { return "binrec" }

func (b *BinomialRecombination) Apply(ctx *framework.RunContext, op *Operand) (int, error) {
	for k, i := range op.Active {
		row := op.Offspring[k]
		incumbent := op.X[i]
		jrand := ctx.RNG.IntN(len(row))
		for j := range row {
			if j != jrand && ctx.RNG.Float64() >= b.Rho {
				row[j] = incumbent[j]
			}
		}
	}
	return 0, nil
}

// Truncate clamps every offspring variable back into the unit hypercube. It
// is the canonical repair tail of the stack.
type Truncate struct{}

func (t *Truncate) Name() string { return "truncate" }

func (t *Truncate) Apply(_ *framework.RunContext, op *Operand) (int, error) {
	for _, row := range op.Offspring {
		for j, v := range row {
			row[j] = math.Max(0, math.Min(1, v))
		}
	}
	return 0, nil
}
