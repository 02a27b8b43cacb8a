// Package stop implements the termination predicates. Every configured
// predicate is evaluated every check and the flags are OR-combined; there is
// no short-circuiting, so predicate-side logging stays deterministic.
package stop

import (
	"fmt"
	"time"

	"github.com/decompopt/moead/apis/config"
)

// RunStatus is the read-only view of the run the predicates see.
type RunStatus struct {
	Iteration int
	NFE       int
	Elapsed   time.Duration
}

// Criterion is one termination predicate.
type Criterion interface {
	Name() string
	Done(st RunStatus) bool
}

// New resolves a predicate list. At least one predicate is required, or the
// run would never terminate.
func New(cfgs []config.StopConfig) ([]Criterion, error) {
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("stop: at least one termination predicate is required")
	}
	out := make([]Criterion, len(cfgs))
	for i, c := range cfgs {
		switch c.Name {
		case "maxiter":
			if c.MaxIter < 1 {
				return nil, fmt.Errorf("stop: maxiter needs maxIter >= 1, got %d", c.MaxIter)
			}
			out[i] = &MaxIter{K: c.MaxIter}
		case "maxeval":
			if c.MaxEval < 1 {
				return nil, fmt.Errorf("stop: maxeval needs maxEval >= 1, got %d", c.MaxEval)
			}
			out[i] = &MaxEval{K: c.MaxEval}
		case "maxtime":
			if c.MaxTime <= 0 {
				return nil, fmt.Errorf("stop: maxtime needs a positive duration, got %v", c.MaxTime)
			}
			out[i] = &MaxTime{Budget: c.MaxTime}
		default:
			return nil, fmt.Errorf("stop: unknown predicate %q", c.Name)
		}
	}
	return out, nil
}

// ShouldStop evaluates all predicates and ORs their flags.
func ShouldStop(crits []Criterion, st RunStatus) bool {
	done := false
	for _, c := range crits {
		if c.Done(st) {
			done = true
		}
	}
	return done
}

// MaxIter stops after exactly K iterations.
type MaxIter struct {
	K int
}

func (*MaxIter) Name() string { return "maxiter" }

func (c *MaxIter) Done(st RunStatus) bool { return st.Iteration >= c.K }

// MaxEval stops once the cumulative evaluation count reaches K.
type MaxEval struct {
	K int
}

func (*MaxEval) Name() string { return "maxeval" }

func (c *MaxEval) Done(st RunStatus) bool { return st.NFE >= c.K }

// MaxTime stops once the elapsed wall-clock time exceeds the budget. The
// check runs at iteration boundaries only; there is no mid-iteration
// cancellation.
type MaxTime struct {
	Budget time.Duration
}

func (*MaxTime) Name() string { return "maxtime" }

func (c *MaxTime) Done(st RunStatus) bool { return st.Elapsed >= c.Budget }
