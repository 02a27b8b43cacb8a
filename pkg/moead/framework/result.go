package framework

import (
	"fmt"
	"time"

	"github.com/decompopt/moead/apis/config"
)

// TraceRecord is one iteration's objective snapshot, kept for convergence
// inspection after the run.
type TraceRecord struct {
	Iteration int
	Y         [][]float64
}

// ArchiveSnapshot is the final state of the optional external archive, in
// problem-native scale. It has no row alignment with the subproblems.
type ArchiveSnapshot struct {
	X [][]float64
	Y [][]float64
	V []float64
}

// Result is what a finished run hands back: the final population in
// problem-native scale, the bookkeeping counters, and the per-iteration trace.
type Result struct {
	X [][]float64
	Y [][]float64
	V *ViolationInfo
	W [][]float64

	// ObjectiveNames and WeightNames label the columns of Y and W.
	ObjectiveNames []string
	WeightNames    []string

	Archive *ArchiveSnapshot

	// Ideal and Nadir are the column-wise min and max of the final feasible Y.
	Ideal []float64
	Nadir []float64

	NFE        int
	Iterations int
	Elapsed    time.Duration
	IterTimes  []time.Duration
	Seed       int64

	// Config is the fully resolved configuration the run executed with,
	// after defaults and preset merging.
	Config *config.MOEADConfig

	Trace []TraceRecord
}

// ObjectiveLabels builds the canonical f1..fM column labels.
func ObjectiveLabels(m int) []string {
	out := make([]string, m)
	for i := range out {
		out[i] = fmt.Sprintf("f%d", i+1)
	}
	return out
}

// WeightLabels builds the canonical w1..wM column labels.
func WeightLabels(m int) []string {
	out := make([]string, m)
	for i := range out {
		out[i] = fmt.Sprintf("w%d", i+1)
	}
	return out
}

// ParetoFront returns the feasible, mutually nondominated rows of the final
// population as objective-space points.
func (r *Result) ParetoFront() []ObjectiveSpacePoint {
	var feasible [][]float64
	for i, row := range r.Y {
		if r.V.Feasible(i) {
			feasible = append(feasible, row)
		}
	}
	keep := NonDominatedFilter(feasible)
	out := make([]ObjectiveSpacePoint, len(keep))
	for k, i := range keep {
		out[k] = ObjectiveSpacePoint(append([]float64(nil), feasible[i]...))
	}
	return out
}
