package bandit

// Trajectory records the actions taken in a single Run, the rewards
// observed for them, and whether each action was the optimal action.
// All three slices have one entry per step.
type Trajectory struct {
	Actions []int
	Rewards []float64
	Optimal []int // 1 if the optimal arm was selected, otherwise 0
}

// newTrajectory returns an empty Trajectory with room for steps steps
func newTrajectory(steps int) Trajectory {
	return Trajectory{
		Actions: make([]int, 0, steps),
		Rewards: make([]float64, 0, steps),
		Optimal: make([]int, 0, steps),
	}
}

// Len returns the number of steps in the Trajectory
func (t Trajectory) Len() int {
	return len(t.Actions)
}

// append records a single step
func (t *Trajectory) append(action int, reward float64, optimal bool) {
	flag := 0
	if optimal {
		flag = 1
	}

	t.Actions = append(t.Actions, action)
	t.Rewards = append(t.Rewards, reward)
	t.Optimal = append(t.Optimal, flag)
}
