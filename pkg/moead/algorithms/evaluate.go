package algorithms

import (
	"fmt"

	"github.com/decompopt/moead/pkg/moead/constraint"
	"github.com/decompopt/moead/pkg/moead/framework"
)

// evaluateAll evaluates every row of the normalized population matrix,
// returning the objective matrix and constraint info in problem-native
// scale.
func evaluateAll(p framework.Problem, X [][]float64) ([][]float64, *framework.ViolationInfo, error) {
	native := framework.Denormalize(X, p.Bounds())
	funcs := p.ObjectiveFuncs()
	if len(funcs) != p.NumObjectives() {
		return nil, nil, fmt.Errorf("evaluate: problem %s declares %d objectives but provides %d functions", p.Name(), p.NumObjectives(), len(funcs))
	}
	Y := make([][]float64, len(native))
	for i, x := range native {
		Y[i] = make([]float64, len(funcs))
		for k, f := range funcs {
			Y[i][k] = f(x)
		}
	}
	return Y, constraint.Evaluate(p, native), nil
}

// evaluateRows re-evaluates only the given rows of the working population,
// in place. Rows outside the set keep their carried-over objectives.
func evaluateRows(p framework.Problem, pop *framework.Population, rows []int) error {
	native := framework.Denormalize(pop.X, p.Bounds())
	funcs := p.ObjectiveFuncs()
	for _, i := range rows {
		if i < 0 || i >= len(native) {
			return fmt.Errorf("evaluate: active index %d out of range [0,%d)", i, len(native))
		}
		for k, f := range funcs {
			pop.Y[i][k] = f(native[i])
		}
	}
	constraint.EvaluateRows(p, pop.V, native, rows)
	return nil
}
