package framework

// ObjectiveFunc maps a decision vector, in problem-native scale, to one
// objective value. Smaller is better.
type ObjectiveFunc func(x []float64) float64

// ConstraintFunc returns the raw constraint value g(x). The constraint is
// satisfied when g(x) <= 0; the positive part of g(x) is the violation.
type ConstraintFunc func(x []float64) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Bounds is the closed interval of one decision variable.
type Bounds struct {
	L float64
	H float64
}

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	NumVariables() int
	NumObjectives() int
	Bounds() []Bounds

	ObjectiveFuncs() []ObjectiveFunc

	// Constraints returns nil for unconstrained problems.
	Constraints() []ConstraintFunc

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// ViolationInfo carries the constraint state of a population, row-aligned
// with X and Y. Raw holds the raw constraint values (N x nc) and Total the
// per-row aggregate violation, i.e. the sum of positive parts of Raw.
type ViolationInfo struct {
	Raw   [][]float64
	Total []float64
}

// Feasible reports whether row i carries zero aggregate violation. A nil
// receiver means the problem is unconstrained and every row is feasible.
func (v *ViolationInfo) Feasible(i int) bool {
	return v == nil || v.Total[i] == 0
}

func (v *ViolationInfo) Clone() *ViolationInfo {
	if v == nil {
		return nil
	}
	return &ViolationInfo{
		Raw:   CloneMatrix(v.Raw),
		Total: append([]float64(nil), v.Total...),
	}
}

// Violation returns the aggregate violation of row i, 0 for a nil receiver.
func (v *ViolationInfo) Violation(i int) float64 {
	if v == nil {
		return 0
	}
	return v.Total[i]
}

// Population is the canonical per-subproblem state: row i of X, Y and V is
// the incumbent of subproblem i. The row alignment with the weight matrix is
// an invariant the orchestrator preserves at every iteration boundary.
type Population struct {
	X [][]float64
	Y [][]float64
	V *ViolationInfo
}

func (p *Population) Clone() *Population {
	return &Population{
		X: CloneMatrix(p.X),
		Y: CloneMatrix(p.Y),
		V: p.V.Clone(),
	}
}

// NeighborTables holds the per-iteration neighborhood state: B[i] lists the T
// subproblems closest to subproblem i (self included in static mode, distance
// zero), and P[i] is the probability that variation draws the parents of
// subproblem i from B[i] rather than from the whole population.
type NeighborTables struct {
	B [][]int
	P []float64
}

// T returns the neighborhood size encoded in the tables.
func (n *NeighborTables) T() int {
	if len(n.B) == 0 {
		return 0
	}
	return len(n.B[0])
}
