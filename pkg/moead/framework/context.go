package framework

import (
	"math/rand/v2"

	"k8s.io/klog/v2"
)

// RunContext is the explicit carrier of the ambient run state collaborators
// are allowed to see. Collaborators read it; only the orchestrator mutates
// the counters between calls.
type RunContext struct {
	// RNG is the single pseudorandom stream of the run. Every stochastic
	// collaborator draws from it, in the fixed phase order of one iteration,
	// so a seed fully determines the run.
	RNG *rand.Rand

	// Iteration is the current iteration number, starting at 1. Zero during setup.
	Iteration int

	// NFE is the cumulative number of objective evaluations so far.
	NFE int

	Logger klog.Logger
}

// NewRunContext seeds the run's pseudorandom stream from the given seed.
func NewRunContext(seed int64, logger klog.Logger) *RunContext {
	return &RunContext{
		RNG:    rand.New(rand.NewPCG(uint64(seed), uint64(seed)+1)),
		Logger: logger,
	}
}
