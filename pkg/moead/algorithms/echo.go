package algorithms

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/decompopt/moead/apis/config"
)

// echo is the progress reporting side channel. It consumes the iteration
// time series and writes to Out; nothing it produces feeds back into the
// optimization state.
type echo struct {
	mode   string
	period int
	Out    io.Writer
}

func newEcho(cfg config.EchoConfig) (*echo, error) {
	switch cfg.Name {
	case "", "none", "iteration", "dots":
	default:
		return nil, fmt.Errorf("echo: unknown mode %q", cfg.Name)
	}
	period := cfg.Period
	if period < 1 {
		period = 1
	}
	return &echo{mode: cfg.Name, period: period, Out: os.Stdout}, nil
}

func (e *echo) report(iter int, times []time.Duration) {
	if e.mode == "" || e.mode == "none" || iter%e.period != 0 {
		return
	}
	switch e.mode {
	case "iteration":
		fmt.Fprintf(e.Out, "iter: %d (%v)\n", iter, times[len(times)-1].Round(time.Millisecond))
	case "dots":
		fmt.Fprint(e.Out, ".")
	}
}
