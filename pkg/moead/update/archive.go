package update

import (
	"math"
	"sort"

	"github.com/decompopt/moead/pkg/moead/framework"
)

// Archive is the optional size-capped store of feasible, mutually
// nondominated solutions kept outside the per-subproblem population. It has
// no row-to-subproblem alignment.
type Archive struct {
	X   [][]float64
	Y   [][]float64
	V   []float64
	Cap int
}

func NewArchive(capacity int) *Archive {
	return &Archive{Cap: capacity}
}

// Ingest unions the given population rows into the pool and re-filters:
// infeasible members are dropped, dominated members are dropped, and the
// survivors are pruned to the cap by crowding distance.
func (a *Archive) Ingest(pop *framework.Population, rows []int) {
	for _, i := range rows {
		if !pop.V.Feasible(i) {
			continue
		}
		a.X = append(a.X, append([]float64(nil), pop.X[i]...))
		a.Y = append(a.Y, append([]float64(nil), pop.Y[i]...))
		a.V = append(a.V, pop.V.Violation(i))
	}
	a.filter()
}

func (a *Archive) filter() {
	keep := framework.NonDominatedFilter(a.Y)
	a.retain(keep)
	if len(a.Y) > a.Cap {
		a.pruneWithCrowding()
	}
}

func (a *Archive) retain(keep []int) {
	X := make([][]float64, len(keep))
	Y := make([][]float64, len(keep))
	V := make([]float64, len(keep))
	for k, i := range keep {
		X[k], Y[k], V[k] = a.X[i], a.Y[i], a.V[i]
	}
	a.X, a.Y, a.V = X, Y, V
}

// pruneWithCrowding drops the most crowded members until the cap holds.
// Boundary members (per-objective extremes) carry infinite distance and are
// never dropped before interior ones.
func (a *Archive) pruneWithCrowding() {
	dist := crowdingDistances(a.Y)
	order := make([]int, len(a.Y))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dist[order[i]] > dist[order[j]]
	})
	keep := append([]int(nil), order[:a.Cap]...)
	sort.Ints(keep)
	a.retain(keep)
}

// crowdingDistances computes the NSGA-II style crowding distance of each row.
func crowdingDistances(Y [][]float64) []float64 {
	n := len(Y)
	dist := make([]float64, n)
	if n <= 2 {
		for i := range dist {
			dist[i] = math.Inf(1)
		}
		return dist
	}
	m := len(Y[0])
	idx := make([]int, n)
	for obj := 0; obj < m; obj++ {
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(i, j int) bool {
			return Y[idx[i]][obj] < Y[idx[j]][obj]
		})
		dist[idx[0]] = math.Inf(1)
		dist[idx[n-1]] = math.Inf(1)
		span := Y[idx[n-1]][obj] - Y[idx[0]][obj]
		if span == 0 {
			continue
		}
		for i := 1; i < n-1; i++ {
			dist[idx[i]] += (Y[idx[i+1]][obj] - Y[idx[i-1]][obj]) / span
		}
	}
	return dist
}

// Snapshot denormalizes the archive into problem-native scale for the final
// result.
func (a *Archive) Snapshot(b []framework.Bounds) *framework.ArchiveSnapshot {
	if a == nil {
		return nil
	}
	return &framework.ArchiveSnapshot{
		X: framework.Denormalize(a.X, b),
		Y: framework.CloneMatrix(a.Y),
		V: append([]float64(nil), a.V...),
	}
}
