package bandit

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a Bandit is constructed from a
// configuration that cannot describe a valid k-armed bandit
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents a configuration for an ε-greedy Bandit
type Config struct {
	Arms            int     // k in k-armed bandit
	Epsilon         float64 // probability of exploring
	OptimisticValue float64 // initial value estimate of each arm
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Arms <= 0 {
		return fmt.Errorf("%w: arms must be positive, got %v",
			ErrInvalidConfig, c.Arms)
	}
	if math.IsNaN(c.Epsilon) || c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("%w: epsilon must be in [0, 1], got %v",
			ErrInvalidConfig, c.Epsilon)
	}
	if math.IsNaN(c.OptimisticValue) || math.IsInf(c.OptimisticValue, 0) {
		return fmt.Errorf("%w: optimistic value must be finite, got %v",
			ErrInvalidConfig, c.OptimisticValue)
	}
	return nil
}

// TimeMode determines which time step is used in the logarithm of the
// UCB exploration bonus
type TimeMode string

const (
	// Horizon uses the total number of steps of the current Run for
	// every step, so the bonus does not shrink as a Run progresses
	Horizon TimeMode = "horizon"

	// Step uses the 1-indexed number of the current step
	Step TimeMode = "step"
)

// UCBConfig represents a configuration for a Bandit that selects greedy
// actions by upper confidence bound
type UCBConfig struct {
	Config
	Confidence float64  // scale of the exploration bonus
	Time       TimeMode // defaults to Horizon
}

// Validate ensures that the UCBConfig is valid
func (c UCBConfig) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if math.IsNaN(c.Confidence) || c.Confidence <= 0 {
		return fmt.Errorf("%w: confidence level must be positive, got %v",
			ErrInvalidConfig, c.Confidence)
	}

	switch c.Time {
	case "", Horizon, Step:
		return nil
	}
	return fmt.Errorf("%w: no such time mode %q", ErrInvalidConfig, c.Time)
}
