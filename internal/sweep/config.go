package sweep

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hellasleeper108/bigO/internal/governor"
	"github.com/hellasleeper108/bigO/internal/validate"
)

// Chart display kinds accepted on a run configuration.
const (
	ChartTable = "table"
	ChartBars  = "bars"
)

// RunConfig describes one sweep request. Immutable for the run's duration.
type RunConfig struct {
	Start int `json:"start" validate:"min=1"`
	End   int `json:"end"   validate:"gtefield=Start"`
	Step  int `json:"step"  validate:"min=1"`

	// Algorithms selects catalog entries by name.
	Algorithms []string `json:"algorithms" validate:"min=1,dive,required"`

	// Mode fixes the safety posture for the whole run.
	Mode governor.Mode `json:"mode"`

	// Chart picks the display kind; presentation-only, carried for adapters.
	Chart string `json:"chart" validate:"omitempty,oneof=table bars"`
}

// Sizes returns the ascending input sizes the sweep will visit. The sequence
// is fully determined by Start/End/Step, so re-running an identical config
// always produces series with the same N values.
func (c RunConfig) Sizes() []int {
	if c.Step <= 0 || c.End < c.Start {
		return nil
	}
	sizes := make([]int, 0, (c.End-c.Start)/c.Step+1)
	for n := c.Start; n <= c.End; n += c.Step {
		sizes = append(sizes, n)
	}
	return sizes
}

// Validate checks the configuration, returning a ConfigError on the first
// violation. Unknown algorithm names are caught later at Start, where the
// catalog is available.
func (c RunConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return ConfigError{Field: verrs[0].Field(), Cause: fmt.Errorf("failed %q constraint", verrs[0].Tag())}
		}
		return ConfigError{Cause: err}
	}
	return nil
}
