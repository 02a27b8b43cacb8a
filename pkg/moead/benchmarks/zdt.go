// Package benchmarks provides the standard synthetic problems used to test
// the correctness of multi-objective algorithms.
package benchmarks

import (
	"math"

	"github.com/decompopt/moead/pkg/moead/framework"
)

// unitBounds is the [0,1] box every ZDT/DTLZ problem lives in.
func unitBounds(numVars int) []framework.Bounds {
	b := make([]framework.Bounds, numVars)
	for i := range b {
		b[i] = framework.Bounds{L: 0.0, H: 1.0}
	}
	return b
}

// ZDT1 is a benchmark function used to test the correctness
// of multi-objective algorithms. For more details, check the article below:
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
type ZDT1 struct {
	numVars int
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{numVars: numVars}
}

func (p *ZDT1) Name() string { return "ZDT1" }

func (p *ZDT1) NumVariables() int { return p.numVars }

func (p *ZDT1) NumObjectives() int { return 2 }

func (p *ZDT1) Bounds() []framework.Bounds { return unitBounds(p.numVars) }

func (p *ZDT1) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT1) f1(x []float64) float64 {
	return x[0]
}

func (p *ZDT1) f2(x []float64) float64 {
	g := zdtG(x)
	return g * (1.0 - math.Sqrt(x[0]/g))
}

// This is an unconstrained problem
func (p *ZDT1) Constraints() []framework.ConstraintFunc { return nil }

// TrueParetoFront generates numPoints points on the true Pareto front for ZDT1
func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{x, 1.0 - math.Sqrt(x)}
	}
	return points
}

// ZDT2 has a non-convex Pareto front.
type ZDT2 struct {
	numVars int
}

func NewZDT2(numVars int) *ZDT2 {
	return &ZDT2{numVars: numVars}
}

func (p *ZDT2) Name() string { return "ZDT2" }

func (p *ZDT2) NumVariables() int { return p.numVars }

func (p *ZDT2) NumObjectives() int { return 2 }

func (p *ZDT2) Bounds() []framework.Bounds { return unitBounds(p.numVars) }

func (p *ZDT2) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT2) f1(x []float64) float64 {
	return x[0]
}

func (p *ZDT2) f2(x []float64) float64 {
	g := zdtG(x)
	// Note: ZDT2 uses (1 - (x1/g)^2) instead of sqrt
	return g * (1.0 - math.Pow(x[0]/g, 2))
}

func (p *ZDT2) Constraints() []framework.ConstraintFunc { return nil }

func (p *ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{x, 1.0 - x*x}
	}
	return points
}

// ZDT3 has a disconnected Pareto front.
type ZDT3 struct {
	numVars int
}

func NewZDT3(numVars int) *ZDT3 {
	return &ZDT3{numVars: numVars}
}

func (p *ZDT3) Name() string { return "ZDT3" }

func (p *ZDT3) NumVariables() int { return p.numVars }

func (p *ZDT3) NumObjectives() int { return 2 }

func (p *ZDT3) Bounds() []framework.Bounds { return unitBounds(p.numVars) }

func (p *ZDT3) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT3) f1(x []float64) float64 {
	return x[0]
}

func (p *ZDT3) f2(x []float64) float64 {
	g := zdtG(x)
	h := 1.0 - math.Sqrt(x[0]/g) - (x[0]/g)*math.Sin(10*math.Pi*x[0])
	return g * h
}

func (p *ZDT3) Constraints() []framework.ConstraintFunc { return nil }

func (p *ZDT3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		f2 := 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x)
		points = append(points, framework.ObjectiveSpacePoint{x, f2})
	}
	return points
}

// zdtG is the shared g(x) of the ZDT family.
func zdtG(x []float64) float64 {
	g := 1.0
	for i := 1; i < len(x); i++ {
		g += 9.0 * x[i] / float64(len(x)-1)
	}
	return g
}
