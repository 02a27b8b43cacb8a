package benchmarks

import (
	"math"

	"github.com/decompopt/moead/pkg/moead/framework"
)

// BNH is the Binh and Korn constrained two-objective problem. It exercises
// the constraint handling path: two decision variables with asymmetric
// bounds and two inequality constraints.
type BNH struct{}

func NewBNH() *BNH { return &BNH{} }

func (p *BNH) Name() string { return "BNH" }

func (p *BNH) NumVariables() int { return 2 }

func (p *BNH) NumObjectives() int { return 2 }

func (p *BNH) Bounds() []framework.Bounds {
	return []framework.Bounds{
		{L: 0, H: 5},
		{L: 0, H: 3},
	}
}

func (p *BNH) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		func(x []float64) float64 { return 4*x[0]*x[0] + 4*x[1]*x[1] },
		func(x []float64) float64 { return math.Pow(x[0]-5, 2) + math.Pow(x[1]-5, 2) },
	}
}

func (p *BNH) Constraints() []framework.ConstraintFunc {
	return []framework.ConstraintFunc{
		// (x0-5)^2 + x1^2 <= 25
		func(x []float64) float64 { return math.Pow(x[0]-5, 2) + x[1]*x[1] - 25 },
		// (x0-8)^2 + (x1+3)^2 >= 7.7
		func(x []float64) float64 { return 7.7 - math.Pow(x[0]-8, 2) - math.Pow(x[1]+3, 2) },
	}
}

func (p *BNH) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	// No closed form is published for the full front.
	return nil
}
