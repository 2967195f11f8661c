package rank

import "github.com/hellasleeper108/bigO/internal/sweep"

// Trend values describing a head-to-head comparison.
const (
	TrendFirstFaster  = "first-faster"
	TrendSecondFaster = "second-faster"
	TrendCrossover    = "crossover"
	TrendEven         = "even"
)

// RatioPoint is the elapsed-time ratio between two series at one shared N.
// Values above 1 mean the first series was slower there.
type RatioPoint struct {
	N     int     `json:"n"`
	Ratio float64 `json:"ratio"`
}

// Comparison is a head-to-head view of two series over the input sizes they
// both measured.
type Comparison struct {
	First  string       `json:"first"`
	Second string       `json:"second"`
	Ratios []RatioPoint `json:"ratios"`

	// Trend summarizes which side wins across the shared range.
	Trend string `json:"trend"`

	// CrossoverN is the smallest shared N where the winner flips relative to
	// the smallest shared N, or 0 when no flip occurs.
	CrossoverN int `json:"crossover_n,omitempty"`
}

// Compare builds per-N ratios for two series and classifies the trend. Sizes
// measured by only one side are skipped; an empty overlap yields an even
// trend with no ratios.
func Compare(a, b *sweep.Series) Comparison {
	cmp := Comparison{First: a.Algorithm, Second: b.Algorithm, Trend: TrendEven}

	for _, p := range a.Points {
		q, ok := b.At(p.N)
		if !ok || q.Elapsed <= 0 {
			continue
		}
		cmp.Ratios = append(cmp.Ratios, RatioPoint{
			N:     p.N,
			Ratio: float64(p.Elapsed) / float64(q.Elapsed),
		})
	}
	if len(cmp.Ratios) == 0 {
		return cmp
	}

	firstWins := cmp.Ratios[0].Ratio < 1
	flipped := false
	for _, r := range cmp.Ratios[1:] {
		if (r.Ratio < 1) != firstWins {
			cmp.CrossoverN = r.N
			flipped = true
			break
		}
	}
	switch {
	case flipped:
		cmp.Trend = TrendCrossover
	case firstWins:
		cmp.Trend = TrendFirstFaster
	default:
		cmp.Trend = TrendSecondFaster
	}
	return cmp
}
