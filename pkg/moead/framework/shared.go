package framework

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Dominates checks if objective vector a dominates objective vector b.
func Dominates(a, b []float64) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// NonDominatedFilter returns the indices of the rows of Y that no other row
// dominates, in their original order.
func NonDominatedFilter(Y [][]float64) []int {
	var keep []int
	for i := range Y {
		dominated := false
		for j := range Y {
			if i != j && Dominates(Y[j], Y[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			keep = append(keep, i)
		}
	}
	return keep
}

// IdealNadir computes the column-wise min and max of the rows of Y selected
// by the feasible predicate. All rows participate when feasible is nil.
func IdealNadir(Y [][]float64, feasible func(int) bool) (ideal, nadir []float64) {
	m := len(Y[0])
	ideal = make([]float64, m)
	nadir = make([]float64, m)
	first := true
	for i, row := range Y {
		if feasible != nil && !feasible(i) {
			continue
		}
		if first {
			copy(ideal, row)
			copy(nadir, row)
			first = false
			continue
		}
		for k, v := range row {
			ideal[k] = min(ideal[k], v)
			nadir[k] = max(nadir[k], v)
		}
	}
	if first {
		// No feasible rows: fall back to the whole matrix.
		return IdealNadir(Y, nil)
	}
	return ideal, nadir
}

// CloneMatrix deep-copies a row matrix. Nil stays nil.
func CloneMatrix(m [][]float64) [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Denormalize maps rows from the unit hypercube to problem-native scale.
func Denormalize(X [][]float64, b []Bounds) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = b[j].L + v*(b[j].H-b[j].L)
		}
	}
	return out
}

// RowDistance is the Euclidean distance between two equal-length rows.
func RowDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// CheckShape verifies that m has the given number of rows and columns,
// returning a descriptive error naming who produced the matrix. The
// orchestrator calls this where it consumes collaborator output.
func CheckShape(who string, m [][]float64, rows, cols int) error {
	if len(m) != rows {
		return fmt.Errorf("%s: want %d rows, got %d", who, rows, len(m))
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("%s: row %d: want %d columns, got %d", who, i, cols, len(row))
		}
	}
	return nil
}
