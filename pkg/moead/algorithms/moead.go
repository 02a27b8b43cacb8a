// Package algorithms holds the iteration orchestrator: the stateful control
// loop that drives a decomposition-based multiobjective run to termination.
// The orchestrator owns the canonical run state (population, objectives,
// constraint info, weights, neighbor tables, priorities, counters) and calls
// each collaborator once per iteration in a fixed sequence; it never embeds
// their policy logic.
package algorithms

import (
	"context"
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/decompopt/moead/apis/config"
	"github.com/decompopt/moead/pkg/moead/constraint"
	"github.com/decompopt/moead/pkg/moead/decomposition"
	"github.com/decompopt/moead/pkg/moead/framework"
	"github.com/decompopt/moead/pkg/moead/neighborhood"
	"github.com/decompopt/moead/pkg/moead/ra"
	"github.com/decompopt/moead/pkg/moead/scalarization"
	"github.com/decompopt/moead/pkg/moead/scaling"
	"github.com/decompopt/moead/pkg/moead/stop"
	"github.com/decompopt/moead/pkg/moead/update"
	"github.com/decompopt/moead/pkg/moead/variation"
)

const Name = "MOEA/D"

// MOEAD is a configured run of the decomposition-based optimizer. All
// strategy slots are resolved at construction; Run only composes them.
type MOEAD struct {
	cfg     *config.MOEADConfig
	problem framework.Problem

	decomp     decomposition.Method
	builder    *neighborhood.Builder
	stack      *variation.Stack
	scaler     scaling.Scaler
	aggregator scalarization.Aggregator
	policy     constraint.Policy
	updater    update.Updater
	scheduler  ra.Strategy
	criteria   []stop.Criterion
	echo       *echo

	logger klog.Logger
}

// New validates the configuration against the problem and resolves every
// strategy slot. Configuration errors are fatal here; Run never repairs.
func New(ctx context.Context, cfg *config.MOEADConfig, problem framework.Problem) (*MOEAD, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", Name)

	if problem == nil {
		return nil, fmt.Errorf("moead: nil problem")
	}
	if problem.NumObjectives() < 2 {
		return nil, fmt.Errorf("moead: problem %s has %d objectives, need at least 2", problem.Name(), problem.NumObjectives())
	}
	if d := problem.NumVariables(); d < 1 || len(problem.Bounds()) != d {
		return nil, fmt.Errorf("moead: problem %s: %d variables with %d bounds", problem.Name(), d, len(problem.Bounds()))
	}
	for j, b := range problem.Bounds() {
		if b.H <= b.L {
			return nil, fmt.Errorf("moead: problem %s: malformed bounds [%v, %v] for variable %d", problem.Name(), b.L, b.H, j)
		}
	}

	cfg = config.Merge(config.Default(), cfg)

	m := &MOEAD{cfg: cfg, problem: problem, logger: logger}
	var err error
	if cfg.Decomposition.W != nil {
		m.decomp = &decomposition.Supplied{W: cfg.Decomposition.W}
	} else if m.decomp, err = decomposition.New(cfg.Decomposition); err != nil {
		return nil, err
	}
	if m.stack, err = variation.NewStack(cfg.Variation); err != nil {
		return nil, err
	}
	if m.scaler, err = scaling.New(cfg.Scaling); err != nil {
		return nil, err
	}
	if m.aggregator, err = scalarization.New(cfg.Aggregation); err != nil {
		return nil, err
	}
	if m.policy, err = constraint.New(cfg.Constraint); err != nil {
		return nil, err
	}
	if m.updater, err = update.New(cfg.Update); err != nil {
		return nil, err
	}
	if m.scheduler, err = ra.New(cfg.Resource); err != nil {
		return nil, err
	}
	if m.criteria, err = stop.New(cfg.Stop); err != nil {
		return nil, err
	}
	if m.echo, err = newEcho(cfg.Echo); err != nil {
		return nil, err
	}
	// The neighborhood builder needs N, which the decomposition determines;
	// it is resolved in Run once W exists.
	return m, nil
}

// Run drives the optimization to termination and assembles the final result.
// Phases within an iteration execute in a fixed order; iteration k+1
// observes only the fully updated state of iteration k.
func (m *MOEAD) Run() (*framework.Result, error) {
	start := time.Now()
	seed := m.cfg.Seed
	if seed == 0 {
		seed = start.UnixNano()
	}
	rctx := framework.NewRunContext(seed, m.logger)

	// Setup: weights, initial population, initial evaluation, scheduler state.
	W, err := m.decomp.Generate(rctx.RNG, m.problem.NumObjectives())
	if err != nil {
		return nil, err
	}
	n := len(W)
	m.builder, err = neighborhood.New(m.cfg.Neighborhood, n)
	if err != nil {
		return nil, err
	}
	t := m.builder.T

	pop := &framework.Population{X: m.initializePopulation(rctx, n)}
	if pop.Y, pop.V, err = evaluateAll(m.problem, pop.X); err != nil {
		return nil, err
	}
	rctx.NFE = n

	state := ra.NewState(n, m.cfg.Resource.Depth)
	boundary := ra.Boundary(W)

	m.logger.Info("starting run",
		"problem", m.problem.Name(),
		"subproblems", n,
		"neighborhoodSize", t,
		"seed", seed)

	var archive *update.Archive
	if m.cfg.Update.UseArchive {
		size := m.cfg.Update.ArchiveCap
		if size <= 0 {
			size = n
		}
		archive = update.NewArchive(size)
	}

	var (
		iterTimes []time.Duration
		spent     time.Duration
		trace     []framework.TraceRecord
	)

	iter := 0
	for {
		iter++
		rctx.Iteration = iter

		// 1. Select the active subset.
		active, err := m.scheduler.Select(rctx, state, boundary)
		if err != nil {
			return nil, fmt.Errorf("moead: iteration %d: select: %w", iter, err)
		}
		if len(active) == 0 {
			return nil, fmt.Errorf("moead: iteration %d: scheduler %s returned an empty active set", iter, m.scheduler.Name())
		}
		for _, i := range active {
			state.Usage[i]++
		}

		// 2. Build neighborhoods from the pre-variation state.
		tables, err := m.builder.Build(m.builder.Similarity(W, pop.X))
		if err != nil {
			return nil, fmt.Errorf("moead: iteration %d: %w", iter, err)
		}

		// 3. Vary the active subset and scatter the offspring into a working
		// copy; inactive rows keep the prior incumbents.
		offspring, dnfe, err := m.stack.Apply(rctx, pop.X, active, tables)
		if err != nil {
			return nil, fmt.Errorf("moead: iteration %d: %w", iter, err)
		}
		if err := framework.CheckShape("variation stack", offspring, len(active), m.problem.NumVariables()); err != nil {
			return nil, fmt.Errorf("moead: iteration %d: %w", iter, err)
		}
		rctx.NFE += dnfe
		working := pop.Clone()
		for k, i := range active {
			copy(working.X[i], offspring[k])
		}

		// 4. Rebuild neighborhoods: dynamic mode must see the new incumbents
		// before evaluation and ranking.
		tables, err = m.builder.Build(m.builder.Similarity(W, working.X))
		if err != nil {
			return nil, fmt.Errorf("moead: iteration %d: %w", iter, err)
		}

		// 5. Evaluate the offspring rows only.
		if err := evaluateRows(m.problem, working, active); err != nil {
			return nil, fmt.Errorf("moead: iteration %d: %w", iter, err)
		}
		rctx.NFE += len(active)

		// 6. Scale objectives; the previous population shares the bounds so
		// incumbent rows stay comparable.
		normY, normPrev, err := m.scaler.Scale(working.Y, pop.Y)
		if err != nil {
			return nil, fmt.Errorf("moead: iteration %d: %w", iter, err)
		}

		// 7. Scalarize into the (T+1) x N fitness matrix.
		Z, err := scalarization.Matrix(m.aggregator, normY, normPrev, W, tables.B)
		if err != nil {
			return nil, fmt.Errorf("moead: iteration %d: %w", iter, err)
		}
		if err := framework.CheckShape("scalarizer", Z, t+1, n); err != nil {
			return nil, fmt.Errorf("moead: iteration %d: %w", iter, err)
		}

		// 8. Rank neighborhoods feasibility-first. Reduced pressure rebuilds
		// the tables at size 1 for this phase only; the full-size tables and
		// matrix are what the priority history keeps.
		rankB, rankZ := tables.B, Z
		if m.cfg.Neighborhood.ReducedPressure {
			t1, err := m.builder.BuildWithSize(m.builder.Similarity(W, working.X), 1)
			if err != nil {
				return nil, fmt.Errorf("moead: iteration %d: %w", iter, err)
			}
			if rankZ, err = scalarization.Matrix(m.aggregator, normY, normPrev, W, t1.B); err != nil {
				return nil, fmt.Errorf("moead: iteration %d: %w", iter, err)
			}
			rankB = t1.B
		}
		candViolation := func(j, i int) float64 {
			if j == len(rankB[0]) {
				return pop.V.Violation(i)
			}
			return working.V.Violation(rankB[i][j])
		}
		ranked := constraint.RankNeighborhoods(m.policy.Adjust(rankZ, candViolation), candViolation)

		// 9. Update the population; the archive ingests the rows accepted
		// this iteration.
		next, replaced, err := m.updater.Update(ranked, rankB, pop, working, active)
		if err != nil {
			return nil, fmt.Errorf("moead: iteration %d: %w", iter, err)
		}
		if archive != nil {
			archive.Ingest(next, replaced)
		}

		// 10. Update priorities from the lag-window history.
		state.Push(iter, Z)
		newPriority, err := m.scheduler.Update(state, Z, state.Delayed(iter), t, next.Y, state.PrevY, W, next.X, state.PrevX)
		if err != nil {
			return nil, fmt.Errorf("moead: iteration %d: priorities: %w", iter, err)
		}
		if len(newPriority) != n {
			return nil, fmt.Errorf("moead: iteration %d: scheduler %s returned %d priorities for %d subproblems", iter, m.scheduler.Name(), len(newPriority), n)
		}
		state.Priority = newPriority
		state.PrevX, state.PrevY = pop.X, pop.Y
		pop = next

		// 11. Bookkeep: iteration time, objective trace, progress echo.
		iterTimes = append(iterTimes, time.Since(start)-spent)
		spent += iterTimes[len(iterTimes)-1]
		trace = append(trace, framework.TraceRecord{Iteration: iter, Y: framework.CloneMatrix(pop.Y)})
		m.echo.report(iter, iterTimes)
		m.logger.V(4).Info("iteration done", "iteration", iter, "active", len(active), "nfe", rctx.NFE, "replaced", len(replaced))

		// 12. Check every termination predicate; stop when any fires.
		if stop.ShouldStop(m.criteria, stop.RunStatus{Iteration: iter, NFE: rctx.NFE, Elapsed: time.Since(start)}) {
			break
		}
	}

	mObj := m.problem.NumObjectives()
	feasible := func(i int) bool { return pop.V.Feasible(i) }
	ideal, nadir := framework.IdealNadir(pop.Y, feasible)

	res := &framework.Result{
		X:              framework.Denormalize(pop.X, m.problem.Bounds()),
		Y:              framework.CloneMatrix(pop.Y),
		V:              pop.V,
		W:              W,
		ObjectiveNames: framework.ObjectiveLabels(mObj),
		WeightNames:    framework.WeightLabels(mObj),
		Ideal:          ideal,
		Nadir:          nadir,
		NFE:            rctx.NFE,
		Iterations:     iter,
		Elapsed:        time.Since(start),
		IterTimes:      iterTimes,
		Seed:           seed,
		Config:         m.cfg,
		Trace:          trace,
	}
	if archive != nil {
		res.Archive = archive.Snapshot(m.problem.Bounds())
	}
	m.logger.Info("run finished", "iterations", iter, "nfe", rctx.NFE, "elapsed", res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// initializePopulation samples n rows uniformly in the unit hypercube. The
// problem's native bounds only enter through denormalization at evaluation
// time, so sampling here always respects them.
func (m *MOEAD) initializePopulation(rctx *framework.RunContext, n int) [][]float64 {
	d := m.problem.NumVariables()
	X := make([][]float64, n)
	for i := range X {
		X[i] = make([]float64, d)
		for j := range X[i] {
			X[i][j] = rctx.RNG.Float64()
		}
	}
	return X
}
