package rank

import (
	"math"

	"github.com/hellasleeper108/bigO/internal/catalog"
	"github.com/hellasleeper108/bigO/internal/sweep"
)

// Guess is a complexity-class estimate derived purely from observed timings.
// Confidence is in [0,1]: how decisively the winning shape beat the runner-up.
type Guess struct {
	Label      catalog.Label `json:"label"`
	Confidence float64       `json:"confidence"`
}

// shape evaluates one reference growth curve at n.
func shape(label catalog.Label, n int) float64 {
	x := float64(n)
	switch label {
	case catalog.Constant:
		return 1
	case catalog.Logarithmic:
		return math.Log2(x + 1)
	case catalog.Linear:
		return x
	case catalog.Linearithmic:
		return x * math.Log2(x+1)
	case catalog.Quadratic:
		return x * x
	case catalog.Exponential:
		return math.Exp2(x)
	case catalog.Factorial:
		return math.Gamma(x + 1)
	default:
		return math.NaN()
	}
}

// GuessLabel fits each reference curve to the samples by a least-squares
// scale factor and picks the shape with the smallest residual. Shapes that
// overflow on the sampled range are skipped. At least two samples at distinct
// N are required; otherwise the guess is unknown with zero confidence.
func GuessLabel(points []sweep.SamplePoint) Guess {
	if len(points) < 2 || points[0].N == points[len(points)-1].N {
		return Guess{Label: catalog.LabelUnknown}
	}

	best := Guess{Label: catalog.LabelUnknown}
	bestResidual := math.Inf(1)
	secondResidual := math.Inf(1)

	for _, label := range catalog.Labels() {
		residual, ok := fitResidual(label, points)
		if !ok {
			continue
		}
		if residual < bestResidual {
			secondResidual = bestResidual
			bestResidual = residual
			best.Label = label
		} else if residual < secondResidual {
			secondResidual = residual
		}
	}

	if best.Label == catalog.LabelUnknown {
		return best
	}
	if math.IsInf(secondResidual, 1) || secondResidual == 0 {
		best.Confidence = 1
	} else {
		best.Confidence = 1 - bestResidual/secondResidual
	}
	return best
}

// fitResidual computes the normalized sum-of-squares error after fitting the
// optimal scale c that minimizes sum((y - c*f)^2), which is
// sum(y*f)/sum(f*f).
func fitResidual(label catalog.Label, points []sweep.SamplePoint) (float64, bool) {
	var sumYF, sumFF, sumYY float64
	for _, p := range points {
		f := shape(label, p.N)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		y := float64(p.Elapsed)
		sumYF += y * f
		sumFF += f * f
		sumYY += y * y
	}
	if sumFF == 0 || sumYY == 0 {
		return 0, false
	}

	c := sumYF / sumFF
	var residual float64
	for _, p := range points {
		d := float64(p.Elapsed) - c*shape(label, p.N)
		residual += d * d
	}
	return residual / sumYY, true
}
