package tracker

import (
	"github.com/samuelfneumann/gobandits/bandit"
	"gonum.org/v1/gonum/mat"
)

// AverageReward tracks the reward received at each step, averaged
// over all tracked runs
type AverageReward struct {
	steps int
	runs  int
	sums  *mat.VecDense
}

// NewAverageReward returns a new AverageReward Tracker for runs of
// steps steps. The number of steps must be positive.
func NewAverageReward(steps int) *AverageReward {
	return &AverageReward{
		steps: steps,
		sums:  mat.NewVecDense(steps, nil),
	}
}

// Track adds the rewards of a run to the running totals
func (a *AverageReward) Track(_ int, t bandit.Trajectory) {
	checkSteps("averageReward", a.steps, t)

	rewards := mat.NewVecDense(a.steps, t.Rewards)
	a.sums.AddVec(a.sums, rewards)
	a.runs++
}

// Runs returns the number of runs tracked
func (a *AverageReward) Runs() int {
	return a.runs
}

// Data returns the average reward at each step
func (a *AverageReward) Data() []float64 {
	mean := mat.NewVecDense(a.steps, nil)
	if a.runs > 0 {
		mean.ScaleVec(1/float64(a.runs), a.sums)
	}
	return mean.RawVector().Data
}
