package benchmarks

import (
	"math"

	"github.com/decompopt/moead/pkg/moead/framework"
)

// DTLZ1 is scalable to any number of objectives.
// It has a linear Pareto front and many local fronts.
type DTLZ1 struct {
	numVars       int
	numObjectives int
}

// NewDTLZ1 builds the problem. Recommended: numVars = numObjectives + k - 1,
// where k = 5 for DTLZ1.
func NewDTLZ1(numVars, numObjectives int) *DTLZ1 {
	return &DTLZ1{numVars: numVars, numObjectives: numObjectives}
}

func (p *DTLZ1) Name() string { return "DTLZ1" }

func (p *DTLZ1) NumVariables() int { return p.numVars }

func (p *DTLZ1) NumObjectives() int { return p.numObjectives }

func (p *DTLZ1) Bounds() []framework.Bounds { return unitBounds(p.numVars) }

func (p *DTLZ1) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := 0; i < p.numObjectives; i++ {
		idx := i
		funcs[i] = func(x []float64) float64 {
			return p.objective(x, idx)
		}
	}
	return funcs
}

func (p *DTLZ1) g(x []float64) float64 {
	k := p.numVars - p.numObjectives + 1
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2) - math.Cos(20*math.Pi*(x[i]-0.5))
	}
	return 100 * (float64(k) + sum)
}

func (p *DTLZ1) objective(x []float64, objIdx int) float64 {
	g := p.g(x)

	f := 0.5 * (1 + g)
	for i := 0; i < p.numObjectives-objIdx-1; i++ {
		f *= x[i]
	}
	if objIdx > 0 {
		f *= (1 - x[p.numObjectives-objIdx-1])
	}
	return f
}

func (p *DTLZ1) Constraints() []framework.ConstraintFunc { return nil }

func (p *DTLZ1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	// The true front satisfies sum(f_i) = 0.5. For 2 objectives that is the
	// line from (0, 0.5) to (0.5, 0); higher dimensions are not generated.
	if p.numObjectives != 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		t := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{0.5 * t, 0.5 * (1 - t)}
	}
	return points
}

// DTLZ2 has a spherical Pareto front, scalable to any number of objectives.
type DTLZ2 struct {
	numVars       int
	numObjectives int
}

// NewDTLZ2 builds the problem. Recommended: numVars = numObjectives + k - 1,
// where k = 10 for DTLZ2.
func NewDTLZ2(numVars, numObjectives int) *DTLZ2 {
	return &DTLZ2{numVars: numVars, numObjectives: numObjectives}
}

func (p *DTLZ2) Name() string { return "DTLZ2" }

func (p *DTLZ2) NumVariables() int { return p.numVars }

func (p *DTLZ2) NumObjectives() int { return p.numObjectives }

func (p *DTLZ2) Bounds() []framework.Bounds { return unitBounds(p.numVars) }

func (p *DTLZ2) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := 0; i < p.numObjectives; i++ {
		idx := i
		funcs[i] = func(x []float64) float64 {
			return p.objective(x, idx)
		}
	}
	return funcs
}

func (p *DTLZ2) g(x []float64) float64 {
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2)
	}
	return sum
}

func (p *DTLZ2) objective(x []float64, objIdx int) float64 {
	g := p.g(x)

	f := 1 + g
	for i := 0; i < p.numObjectives-objIdx-1; i++ {
		f *= math.Cos(x[i] * math.Pi / 2)
	}
	// Last term is sin for all objectives except the first
	if objIdx > 0 {
		f *= math.Sin(x[p.numObjectives-objIdx-1] * math.Pi / 2)
	}
	return f
}

func (p *DTLZ2) Constraints() []framework.ConstraintFunc { return nil }

func (p *DTLZ2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	// For 2 objectives the front is the quarter circle f1^2 + f2^2 = 1.
	if p.numObjectives != 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		theta := (math.Pi / 2) * float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{math.Cos(theta), math.Sin(theta)}
	}
	return points
}
