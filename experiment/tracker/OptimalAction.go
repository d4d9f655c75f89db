package tracker

import (
	"github.com/samuelfneumann/gobandits/bandit"
	"gonum.org/v1/gonum/mat"
)

// OptimalAction tracks the percentage of runs in which the optimal
// arm was selected at each step
type OptimalAction struct {
	steps int
	runs  int
	sums  *mat.VecDense
}

// NewOptimalAction returns a new OptimalAction Tracker for runs of
// steps steps. The number of steps must be positive.
func NewOptimalAction(steps int) *OptimalAction {
	return &OptimalAction{
		steps: steps,
		sums:  mat.NewVecDense(steps, nil),
	}
}

// Track counts the steps of a run at which the optimal arm was
// selected
func (o *OptimalAction) Track(_ int, t bandit.Trajectory) {
	checkSteps("optimalAction", o.steps, t)

	for i, flag := range t.Optimal {
		o.sums.SetVec(i, o.sums.AtVec(i)+float64(flag))
	}
	o.runs++
}

// Data returns the percentage of runs that selected the optimal arm at
// each step
func (o *OptimalAction) Data() []float64 {
	percent := mat.NewVecDense(o.steps, nil)
	if o.runs > 0 {
		percent.ScaleVec(100/float64(o.runs), o.sums)
	}
	return percent.RawVector().Data
}
