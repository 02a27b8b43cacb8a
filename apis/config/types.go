package config

import "time"

// MOEADConfig is the full run configuration. Strategy slots are selected by
// name and resolved into concrete implementations once, before the run
// starts; an unknown name is a fatal configuration error at resolve time.
type MOEADConfig struct {
	// Seed drives the single pseudorandom stream of the run. Two runs with
	// the same seed and configuration produce identical results.
	Seed int64 `json:"seed,omitempty"`

	Decomposition DecompositionConfig `json:"decomposition,omitempty"`
	Neighborhood  NeighborhoodConfig  `json:"neighborhood,omitempty"`
	Variation     []OperatorConfig    `json:"variation,omitempty"`
	Aggregation   AggregationConfig   `json:"aggregation,omitempty"`
	Scaling       ScalingConfig       `json:"scaling,omitempty"`
	Constraint    ConstraintConfig    `json:"constraint,omitempty"`
	Update        UpdateConfig        `json:"update,omitempty"`
	Resource      ResourceConfig      `json:"resource,omitempty"`
	Stop          []StopConfig        `json:"stop,omitempty"`
	Echo          EchoConfig          `json:"echo,omitempty"`
}

// DecompositionConfig selects how the weight matrix is produced. When W is
// set it is used as-is (dimension-checked) and Name/H are ignored.
type DecompositionConfig struct {
	// Name is "sld" (simplex-lattice design) or "uniform".
	Name string `json:"name,omitempty"`
	// H is the lattice parameter for "sld"; N = C(H+M-1, M-1).
	H int `json:"h,omitempty"`
	// N is the number of weight vectors for "uniform".
	N int `json:"n,omitempty"`
	// W, when non-nil, is a pre-computed weight matrix.
	W [][]float64 `json:"w,omitempty"`
}

// NeighborhoodConfig controls the per-iteration neighbor tables.
type NeighborhoodConfig struct {
	// Name selects the similarity source: "lambda" builds the tables from the
	// fixed weight matrix (static), "x" from the current incumbents (dynamic).
	Name string `json:"name,omitempty"`
	// T is the neighborhood size, 0 < T < N.
	T int `json:"t,omitempty"`
	// Delta is the probability that variation draws parents from the
	// neighborhood rather than the whole population.
	Delta float64 `json:"delta,omitempty"`
	// ReducedPressure, when set, rebuilds the tables at T=1 just before
	// ranking, sharpening replacement locality. Variation still sees the
	// full-size tables.
	ReducedPressure bool `json:"reducedPressure,omitempty"`
}

// OperatorConfig is one entry of the ordered variation stack.
type OperatorConfig struct {
	// Name is "sbx", "polymut", "diffmut", "binrec" or "truncate".
	Name string `json:"name,omitempty"`

	// Pc and EtaX parameterize "sbx".
	Pc   float64 `json:"pc,omitempty"`
	EtaX float64 `json:"etaX,omitempty"`

	// Pm and EtaM parameterize "polymut". Pm <= 0 means 1/D.
	Pm   float64 `json:"pm,omitempty"`
	EtaM float64 `json:"etaM,omitempty"`

	// Phi is the differential scaling factor of "diffmut". Zero means a
	// uniform draw in (0, 1] per application.
	Phi float64 `json:"phi,omitempty"`

	// Rho is the per-variable exchange probability of "binrec".
	Rho float64 `json:"rho,omitempty"`
}

// AggregationConfig selects the scalarization formula.
type AggregationConfig struct {
	// Name is "ws" (weighted sum), "wt" (weighted Tchebycheff) or "pbi".
	Name string `json:"name,omitempty"`
	// Theta is the PBI penalty parameter.
	Theta float64 `json:"theta,omitempty"`
}

// ScalingConfig selects objective scaling: "none" or "simple" (linear
// rescale to [0,1] over the union of the current and previous objectives).
type ScalingConfig struct {
	Name string `json:"name,omitempty"`
}

// ConstraintConfig selects the constraint handling policy.
type ConstraintConfig struct {
	// Name is "none" or "penalty".
	Name string `json:"name,omitempty"`
	// Beta is the penalty coefficient for "penalty".
	Beta float64 `json:"beta,omitempty"`
}

// UpdateConfig selects the population replacement policy.
type UpdateConfig struct {
	// Name is "standard" or "best".
	Name string `json:"name,omitempty"`
	// Nr caps how many incumbents one offspring may replace under "best".
	Nr int `json:"nr,omitempty"`
	// UseArchive enables the external nondominated archive.
	UseArchive bool `json:"useArchive,omitempty"`
	// ArchiveCap bounds the archive size. Zero means the population size.
	ArchiveCap int `json:"archiveCap,omitempty"`
}

// ResourceConfig selects the resource allocation strategy deciding which
// subproblems receive variation and evaluation each iteration.
type ResourceConfig struct {
	// Name is "none", "random" or "relative".
	Name string `json:"name,omitempty"`
	// Fraction of the population active per iteration for "random" and
	// "relative". Zero means all.
	Fraction float64 `json:"fraction,omitempty"`
	// Depth is the lag window of the priority history, >= 1.
	Depth int `json:"depth,omitempty"`
}

// StopConfig is one termination predicate. All configured predicates are
// evaluated every iteration and OR-combined.
type StopConfig struct {
	// Name is "maxiter", "maxeval" or "maxtime".
	Name    string        `json:"name,omitempty"`
	MaxIter int           `json:"maxIter,omitempty"`
	MaxEval int           `json:"maxEval,omitempty"`
	MaxTime time.Duration `json:"maxTime,omitempty"`
}

// EchoConfig controls progress reporting, a side channel with no effect on
// the optimization state.
type EchoConfig struct {
	// Name is "none", "iteration" or "dots".
	Name string `json:"name,omitempty"`
	// Period is how many iterations pass between reports, >= 1.
	Period int `json:"period,omitempty"`
}
