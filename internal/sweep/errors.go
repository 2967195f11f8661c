package sweep

import (
	"errors"
	"fmt"
)

// ErrAlreadyRunning reports a Start call while a run is in flight.
var ErrAlreadyRunning = errors.New("a run is already in progress")

// ConfigError reports an invalid RunConfig. It is the only failure surfaced
// synchronously by Start; everything after validation is captured as series
// outcomes instead of errors.
type ConfigError struct {
	Field string
	Cause error
}

func (e ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid run config (%s): %v", e.Field, e.Cause)
	}
	return fmt.Sprintf("invalid run config: %v", e.Cause)
}

func (e ConfigError) Unwrap() error { return e.Cause }
