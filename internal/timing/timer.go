// Package timing measures the wall-clock duration of a single workload
// invocation. The measurement boundary wraps exactly the invocation; all
// catalog and bookkeeping overhead stays outside the timed region.
package timing

import (
	"fmt"
	"time"

	"github.com/hellasleeper108/bigO/internal/catalog"
)

// ExecutionError reports a runtime fault raised by the workload itself
// (stack exhaustion, out of memory). The orchestrator treats it as an abort
// trigger for that algorithm's sweep, never as a process crash.
type ExecutionError struct {
	Algorithm string
	N         int
	Cause     error
}

func (e ExecutionError) Error() string {
	return fmt.Sprintf("algorithm %q failed at n=%d: %v", e.Algorithm, e.N, e.Cause)
}

func (e ExecutionError) Unwrap() error { return e.Cause }

// Measure runs spec.Fn(n) once and returns the elapsed wall-clock duration.
// time.Now/time.Since use the monotonic clock, so the result is immune to
// wall-clock adjustments and never negative.
func Measure(spec catalog.AlgorithmSpec, n int) (elapsed time.Duration, err error) {
	if spec.Fn == nil {
		return 0, ExecutionError{Algorithm: spec.Name, N: n, Cause: fmt.Errorf("no workload function")}
	}
	if n < 0 {
		return 0, ExecutionError{Algorithm: spec.Name, N: n, Cause: fmt.Errorf("input size must be non-negative")}
	}

	// A runaway workload can blow the stack or exhaust memory; recover it into
	// a typed error so one misbehaving algorithm cannot take down the run.
	defer func() {
		if r := recover(); r != nil {
			elapsed = 0
			err = ExecutionError{Algorithm: spec.Name, N: n, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	start := time.Now()
	spec.Fn(n)
	elapsed = time.Since(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed, nil
}
