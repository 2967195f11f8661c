// Package governor decides whether a sweep step may run at all. Its job is to
// keep a single interactive session from freezing the host: ceilings per
// complexity class, a wall-clock budget per invocation, and a predictive check
// that refuses a step before it runs when the class's growth law says it
// cannot possibly fit the budget.
package governor

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hellasleeper108/bigO/internal/catalog"
)

// Mode selects the safety posture for a whole run. It travels on the run
// configuration and into every Authorize call; it is never ambient state.
type Mode int

const (
	// Teaching uses conservative ceilings and a deliberate inter-step delay so
	// a learner can watch growth happen.
	Teaching Mode = iota
	// Chaos raises or removes ceilings and drops the delay, accepting
	// multi-second stalls. Unbounded classes keep a hard emergency ceiling.
	Chaos
)

func (m Mode) String() string {
	if m == Chaos {
		return "chaos"
	}
	return "teaching"
}

// ParseMode resolves a CLI mode flag value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "teaching":
		return Teaching, nil
	case "chaos":
		return Chaos, nil
	default:
		return Teaching, fmt.Errorf("unknown mode: %q (want teaching or chaos)", s)
	}
}

// Rule is the per-class policy row.
type Rule struct {
	// TeachingMaxN is the input-size ceiling in Teaching mode.
	TeachingMaxN int
	// ChaosMaxN is the ceiling in Chaos mode; zero means unlimited.
	ChaosMaxN int
	// Budget is the wall-clock allowance for one invocation. A step whose
	// predicted duration exceeds it is denied before the Timer ever runs.
	Budget time.Duration
}

// MaxN returns the ceiling for the given mode; zero means unlimited.
func (r Rule) MaxN(mode Mode) int {
	if mode == Chaos {
		return r.ChaosMaxN
	}
	return r.TeachingMaxN
}

// History carries the most recent completed measurement for an algorithm,
// feeding the predictive check.
type History struct {
	N       int
	Elapsed time.Duration
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(format string, args ...any) Decision {
	return Decision{Allowed: false, Reason: fmt.Sprintf(format, args...)}
}

// Policy is the full table of per-class rules plus run pacing.
type Policy struct {
	rules         map[catalog.Label]Rule
	teachingDelay time.Duration
}

const defaultTeachingDelay = 50 * time.Millisecond

// DefaultPolicy returns the built-in policy table. Teaching ceilings for the
// unbounded classes follow the catalog's recommended maxima; Chaos keeps hard
// emergency ceilings for the superlinear classes (quadratic, exponential,
// factorial) and lifts the limit everywhere else.
func DefaultPolicy() *Policy {
	return &Policy{
		teachingDelay: defaultTeachingDelay,
		rules: map[catalog.Label]Rule{
			catalog.Constant:     {TeachingMaxN: 10_000_000, ChaosMaxN: 0, Budget: 250 * time.Millisecond},
			catalog.Logarithmic:  {TeachingMaxN: 10_000_000, ChaosMaxN: 0, Budget: 250 * time.Millisecond},
			catalog.Linear:       {TeachingMaxN: 1_000_000, ChaosMaxN: 0, Budget: 500 * time.Millisecond},
			catalog.Linearithmic: {TeachingMaxN: 500_000, ChaosMaxN: 0, Budget: 500 * time.Millisecond},
			catalog.Quadratic:    {TeachingMaxN: 2_000, ChaosMaxN: 20_000, Budget: time.Second},
			catalog.Exponential:  {TeachingMaxN: 30, ChaosMaxN: 40, Budget: 2 * time.Second},
			catalog.Factorial:    {TeachingMaxN: 10, ChaosMaxN: 13, Budget: 2 * time.Second},
			catalog.LabelUnknown: {TeachingMaxN: 100_000, ChaosMaxN: 0, Budget: time.Second},
		},
	}
}

// Rule returns the policy row for a class, falling back to the unknown-class
// row when the label has no explicit entry.
func (p *Policy) Rule(label catalog.Label) Rule {
	if r, ok := p.rules[label]; ok {
		return r
	}
	return p.rules[catalog.LabelUnknown]
}

// SetRule replaces the policy row for a class. Used by policy-file overrides.
func (p *Policy) SetRule(label catalog.Label, r Rule) {
	p.rules[label] = r
}

// SetTeachingDelay overrides the teaching-mode pacing delay.
func (p *Policy) SetTeachingDelay(d time.Duration) {
	if d >= 0 {
		p.teachingDelay = d
	}
}

// StepDelay returns the enforced pause between sweep steps for a mode.
func (p *Policy) StepDelay(mode Mode) time.Duration {
	if mode == Teaching {
		return p.teachingDelay
	}
	return 0
}

// Authorize decides whether measuring spec at n is allowed under mode.
// prev is the algorithm's most recent completed measurement, or nil on the
// first step. The decision is a pure function of its inputs.
func (p *Policy) Authorize(spec catalog.AlgorithmSpec, n int, mode Mode, prev *History) Decision {
	rule := p.Rule(spec.Label)

	if max := rule.MaxN(mode); max > 0 && n > max {
		return deny("n=%d exceeds the %s-mode ceiling of %d for %s", n, mode, max, spec.Label.Notation())
	}

	if prev == nil {
		return allow()
	}
	if prev.Elapsed > rule.Budget {
		return deny("previous step (n=%d) took %s, over the %s budget", prev.N, prev.Elapsed, rule.Budget)
	}

	// Predictive check: scale the last measurement through the class's growth
	// law. For exponential and factorial classes this is the only thing
	// standing between the learner and an indefinite hang, so the check runs
	// before the Timer, never as a post-hoc timeout.
	predicted := predict(spec.Label, prev, n)
	if predicted > rule.Budget {
		return deny("n=%d predicted to take ~%s for %s, over the %s budget",
			n, predicted.Round(time.Millisecond), spec.Label.Notation(), rule.Budget)
	}
	return allow()
}

// predict extrapolates prev.Elapsed from prev.N to n under the label's growth
// law. Unknown labels extrapolate quadratically: pessimistic enough to stop a
// runaway custom workload, loose enough not to starve a benign one.
func predict(label catalog.Label, prev *History, n int) time.Duration {
	if prev.N <= 0 || n <= prev.N {
		return prev.Elapsed
	}
	factor := growthFactor(label, prev.N, n)
	if math.IsInf(factor, 1) || factor > math.MaxFloat64/float64(time.Hour) {
		return time.Duration(math.MaxInt64)
	}
	predicted := float64(prev.Elapsed) * factor
	if predicted > float64(math.MaxInt64) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(predicted)
}

// growthFactor returns f(to)/f(from) for the label's canonical growth law.
func growthFactor(label catalog.Label, from, to int) float64 {
	ff, tf := float64(from), float64(to)
	switch label {
	case catalog.Constant:
		return 1
	case catalog.Logarithmic:
		if from < 2 {
			return math.Log2(math.Max(tf, 2))
		}
		return math.Log2(tf) / math.Log2(ff)
	case catalog.Linear:
		return tf / ff
	case catalog.Linearithmic:
		if from < 2 {
			return tf * math.Log2(math.Max(tf, 2)) / ff
		}
		return (tf * math.Log2(tf)) / (ff * math.Log2(ff))
	case catalog.Quadratic, catalog.LabelUnknown:
		return (tf / ff) * (tf / ff)
	case catalog.Exponential:
		return math.Pow(2, tf-ff)
	case catalog.Factorial:
		factor := 1.0
		for k := from + 1; k <= to; k++ {
			factor *= float64(k)
			if math.IsInf(factor, 1) {
				return factor
			}
		}
		return factor
	default:
		return (tf / ff) * (tf / ff)
	}
}
