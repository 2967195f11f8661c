// Package rank compares finalized measurement series: it orders algorithms by
// practicality at a shared input size, attaches qualitative judgments, and
// guesses complexity classes from observed timings.
package rank

import (
	"sort"
	"time"

	"github.com/hellasleeper108/bigO/internal/sweep"
)

// Band maps an elapsed-time ceiling to a qualitative judgment. Bands are
// checked in order; the first ceiling the duration fits under wins.
type Band struct {
	Ceiling  time.Duration `json:"ceiling"`
	Judgment string        `json:"judgment"`
}

// Bands is an ordered judgment scale. The final band's ceiling is ignored and
// acts as the catch-all.
type Bands []Band

// DefaultBands is the judgment scale used when no policy file overrides it.
func DefaultBands() Bands {
	return Bands{
		{Ceiling: time.Millisecond, Judgment: "Instant"},
		{Ceiling: 100 * time.Millisecond, Judgment: "Fast"},
		{Ceiling: time.Second, Judgment: "Sluggish"},
		{Judgment: "Impractical"},
	}
}

// Judge returns the judgment for one elapsed duration.
func (b Bands) Judge(d time.Duration) string {
	if len(b) == 0 {
		return ""
	}
	for _, band := range b[:len(b)-1] {
		if d < band.Ceiling {
			return band.Judgment
		}
	}
	return b[len(b)-1].Judgment
}

// Ranker orders series by measured speed at the largest input size every
// measured series reached. It implements sweep.Ranker.
type Ranker struct {
	bands Bands
}

// New returns a Ranker with the given judgment scale, or the default scale
// when bands is empty.
func New(bands Bands) *Ranker {
	if len(bands) == 0 {
		bands = DefaultBands()
	}
	return &Ranker{bands: bands}
}

// Rank produces one entry per series, fastest first. Ranking never compares
// timings taken at different input sizes: the comparison point is the largest
// N present in every series that recorded at least one sample. Series with no
// samples at all cannot be ranked and are listed last as unmeasured.
func (r *Ranker) Rank(series []*sweep.Series) []sweep.RankingEntry {
	if len(series) == 0 {
		return nil
	}

	commonN := 0
	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		if n := s.LargestN(); commonN == 0 || n < commonN {
			commonN = n
		}
	}

	entries := make([]sweep.RankingEntry, 0, len(series))
	for _, s := range series {
		e := sweep.RankingEntry{
			Algorithm: s.Algorithm,
			Label:     s.Label,
			Judgment:  "Unmeasured",
		}
		if p, ok := s.At(commonN); ok {
			e.N = commonN
			e.Elapsed = p.Elapsed
			e.Judgment = r.bands.Judge(p.Elapsed)
			e.Measured = true
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Measured != b.Measured {
			return a.Measured
		}
		if a.Elapsed != b.Elapsed {
			return a.Elapsed < b.Elapsed
		}
		return a.Label < b.Label
	})
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}
