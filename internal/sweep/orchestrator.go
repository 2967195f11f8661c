package sweep

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hellasleeper108/bigO/internal/catalog"
	"github.com/hellasleeper108/bigO/internal/governor"
	"github.com/hellasleeper108/bigO/internal/timing"
)

// State is the orchestrator's run lifecycle.
type State int

const (
	Idle State = iota
	Running
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return "idle"
	}
}

// AbortSignal asks the current sweep to stop at the next step boundary.
// Set by the user (or any external caller); cleared at the start of each run.
type AbortSignal struct {
	flag atomic.Bool
}

func (s *AbortSignal) Trigger()        { s.flag.Store(true) }
func (s *AbortSignal) Triggered() bool { return s.flag.Load() }
func (s *AbortSignal) Reset()          { s.flag.Store(false) }

// Reporter receives engine events as they happen. The engine never depends on
// how these are rendered; implementations must not block for long, since the
// engine calls them from its timing loop.
type Reporter interface {
	OnSample(seriesID string, p SamplePoint)
	OnSeriesFinalized(seriesID string, outcome Outcome)
	OnRunFinished(ranking []RankingEntry)
}

// Ranker turns finalized series into a practicality ranking.
type Ranker interface {
	Rank(series []*Series) []RankingEntry
}

// Measurer measures one invocation. Injectable so orchestrator tests can run
// without real timing.
type Measurer func(spec catalog.AlgorithmSpec, n int) (time.Duration, error)

// Result is everything a finished (or aborted) run produced. Series are
// read-only once the run reaches a terminal state.
type Result struct {
	RunID     string         `json:"run_id"`
	Config    RunConfig      `json:"config"`
	Series    []*Series      `json:"series"`
	Ranking   []RankingEntry `json:"ranking,omitempty"`
	State     State          `json:"-"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration"`
}

// Orchestrator drives sweeps: one algorithm at a time, one input size at a
// time, each step authorized by the Governor before the Timer runs. Sweeps
// are deliberately sequential so measurements never contend with each other.
type Orchestrator struct {
	cat     *catalog.Catalog
	policy  *governor.Policy
	measure Measurer
	ranker  Ranker
	rep     Reporter
	abort   AbortSignal

	mu    sync.Mutex
	state State
}

// New creates an orchestrator over the given catalog and policy.
func New(cat *catalog.Catalog, policy *governor.Policy) *Orchestrator {
	return &Orchestrator{
		cat:     cat,
		policy:  policy,
		measure: timing.Measure,
		state:   Idle,
	}
}

// WithReporter sets the presentation adapter receiving live events.
func (o *Orchestrator) WithReporter(r Reporter) *Orchestrator {
	o.rep = r
	return o
}

// WithRanker sets the comparator invoked when a run reaches a terminal state.
func (o *Orchestrator) WithRanker(r Ranker) *Orchestrator {
	o.ranker = r
	return o
}

// WithMeasurer replaces the timing function.
func (o *Orchestrator) WithMeasurer(m Measurer) *Orchestrator {
	o.measure = m
	return o
}

// Abort requests cooperative cancellation. Observable within one step.
func (o *Orchestrator) Abort() { o.abort.Trigger() }

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// Start validates config and runs the sweep to a terminal state. Only
// ConfigError (or ErrAlreadyRunning) is returned; every other failure mode is
// recorded on the affected series and the run keeps going.
func (o *Orchestrator) Start(ctx context.Context, cfg RunConfig) (*Result, error) {
	o.mu.Lock()
	if o.state == Running {
		o.mu.Unlock()
		return nil, ErrAlreadyRunning
	}
	if err := cfg.Validate(); err != nil {
		o.mu.Unlock()
		return nil, err
	}

	// Resolve every selection before measuring anything, so an unknown name
	// fails the whole run up front rather than halfway through. A rejected
	// config never transitions the run to Running.
	specs := make([]catalog.AlgorithmSpec, 0, len(cfg.Algorithms))
	for _, name := range cfg.Algorithms {
		spec, err := o.cat.Get(name)
		if err != nil {
			o.mu.Unlock()
			return nil, ConfigError{Field: "Algorithms", Cause: err}
		}
		specs = append(specs, spec)
	}
	o.state = Running
	o.mu.Unlock()

	o.abort.Reset()
	if ctx == nil {
		ctx = context.Background()
	}

	res := &Result{
		RunID:     uuid.NewString(),
		Config:    cfg,
		StartedAt: time.Now(),
	}
	sizes := cfg.Sizes()
	logrus.Debugf("starting run %s: %d algorithms, %d sizes, mode=%s",
		res.RunID, len(specs), len(sizes), cfg.Mode)

	for _, spec := range specs {
		if o.cancelled(ctx) {
			// Not-yet-started algorithms get no series at all.
			break
		}
		s := o.sweepOne(ctx, spec, sizes, cfg.Mode)
		res.Series = append(res.Series, s)
		o.emitSeriesFinalized(s)
	}

	res.Duration = time.Since(res.StartedAt)
	if o.cancelled(ctx) {
		res.State = Aborted
	} else {
		res.State = Completed
	}
	o.setState(res.State)

	if o.ranker != nil {
		res.Ranking = o.ranker.Rank(res.Series)
	}
	if o.rep != nil {
		o.rep.OnRunFinished(res.Ranking)
	}
	logrus.Debugf("run %s %s after %s", res.RunID, res.State, res.Duration)
	return res, nil
}

// sweepOne walks the ascending sizes for a single algorithm. Per-step order:
// poll cancellation, authorize, measure, append, publish, pace.
func (o *Orchestrator) sweepOne(ctx context.Context, spec catalog.AlgorithmSpec, sizes []int, mode governor.Mode) *Series {
	s := &Series{Algorithm: spec.Name, Label: spec.Label}
	var prev *governor.History

	for _, n := range sizes {
		if o.cancelled(ctx) {
			s.Outcome = Outcome{Kind: OutcomeCancelled, Detail: "cancelled by user"}
			return s
		}

		decision := o.policy.Authorize(spec, n, mode, prev)
		if !decision.Allowed {
			logrus.Debugf("governor denied %s at n=%d: %s", spec.Name, n, decision.Reason)
			s.Outcome = Outcome{Kind: OutcomePolicyDenied, Detail: decision.Reason}
			return s
		}

		elapsed, err := o.measure(spec, n)
		if err != nil {
			logrus.Debugf("measurement of %s at n=%d failed: %v", spec.Name, n, err)
			s.Outcome = Outcome{Kind: OutcomeExecutionFailed, Detail: err.Error()}
			return s
		}

		p := SamplePoint{Algorithm: spec.Name, N: n, Elapsed: elapsed}
		s.Points = append(s.Points, p)
		if o.rep != nil {
			o.rep.OnSample(spec.Name, p)
		}
		prev = &governor.History{N: n, Elapsed: elapsed}

		// Teaching-mode pacing so a learner can watch the bars grow.
		if delay := o.policy.StepDelay(mode); delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
		}
	}

	s.Outcome = Outcome{Kind: OutcomeCompleted}
	return s
}

func (o *Orchestrator) cancelled(ctx context.Context) bool {
	return o.abort.Triggered() || ctx.Err() != nil
}

func (o *Orchestrator) emitSeriesFinalized(s *Series) {
	if o.rep != nil {
		o.rep.OnSeriesFinalized(s.Algorithm, s.Outcome)
	}
}
