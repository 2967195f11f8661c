package sweep

import (
	"time"

	"github.com/hellasleeper108/bigO/internal/catalog"
)

// SamplePoint is one timed invocation: input size, elapsed duration, and the
// algorithm it belongs to. Never mutated after creation; N is strictly
// increasing within a series because sweeps walk the range in order.
type SamplePoint struct {
	Algorithm string        `json:"algorithm"`
	N         int           `json:"n"`
	Elapsed   time.Duration `json:"elapsed"`
}

// OutcomeKind classifies how a series ended.
type OutcomeKind int

const (
	// OutcomePending marks a series whose sweep is still in flight.
	OutcomePending OutcomeKind = iota
	// OutcomeCompleted means the sweep covered its full range.
	OutcomeCompleted
	// OutcomePolicyDenied means the Safety Governor refused a step. This is a
	// recorded normal outcome, not a failure.
	OutcomePolicyDenied
	// OutcomeExecutionFailed means the workload itself raised a runtime fault.
	OutcomeExecutionFailed
	// OutcomeCancelled means an external abort stopped the sweep.
	OutcomeCancelled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCompleted:
		return "completed"
	case OutcomePolicyDenied:
		return "policy-denied"
	case OutcomeExecutionFailed:
		return "execution-failed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// Outcome is a series's finalization reason.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Detail string      `json:"detail,omitempty"`
}

// Aborted reports whether the series ended without covering its full range.
func (o Outcome) Aborted() bool {
	return o.Kind == OutcomePolicyDenied || o.Kind == OutcomeExecutionFailed || o.Kind == OutcomeCancelled
}

// Series is the ordered sample sequence for one algorithm across one run.
// Append-only while the sweep is in flight, read-only once finalized.
type Series struct {
	Algorithm string        `json:"algorithm"`
	Label     catalog.Label `json:"label"`
	Points    []SamplePoint `json:"points"`
	Outcome   Outcome       `json:"outcome"`
}

// LargestN returns the largest completed input size, or 0 for an empty series.
func (s *Series) LargestN() int {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].N
}

// At returns the sample at input size n.
func (s *Series) At(n int) (SamplePoint, bool) {
	for _, p := range s.Points {
		if p.N == n {
			return p, true
		}
	}
	return SamplePoint{}, false
}

// RankingEntry is the comparator's verdict for one finalized series: the
// elapsed time at the ranking N, a qualitative judgment, and a 1-based rank.
type RankingEntry struct {
	Position  int           `json:"position"`
	Algorithm string        `json:"algorithm"`
	Label     catalog.Label `json:"label"`
	N         int           `json:"n"`
	Elapsed   time.Duration `json:"elapsed"`
	Judgment  string        `json:"judgment"`
	Measured  bool          `json:"measured"`
}
