package bandit

import "math"

// Scorer computes the per-arm scores that the greedy branch of action
// selection maximizes. Score writes one score per arm into dst, given
// the current value estimates q and selection counts n. step is the
// 1-indexed number of the current step and horizon the total number of
// steps in the current Run.
type Scorer interface {
	Score(dst, q []float64, n []int, step, horizon int)
}

// SampleAverage scores each arm by its sample-average value estimate
type SampleAverage struct{}

// Score copies the value estimates into dst
func (SampleAverage) Score(dst, q []float64, _ []int, _, _ int) {
	copy(dst, q)
}

// UCB scores each arm by its value estimate plus an exploration bonus
// that grows with the time step and shrinks with the number of times
// the arm was selected
type UCB struct {
	Confidence float64
	Time       TimeMode
}

// Score computes the upper confidence bound of each arm
func (u UCB) Score(dst, q []float64, n []int, step, horizon int) {
	t := horizon
	if u.Time == Step {
		t = step
	}

	for a := range dst {
		dst[a] = UCBScore(q[a], n[a], u.Confidence, t)
	}
}

// UCBScore returns the upper confidence bound of an arm with value
// estimate q that was selected n times, at time step t. An arm that
// was never selected scores its bare value estimate.
func UCBScore(q float64, n int, confidence float64, t int) float64 {
	if n == 0 {
		return q
	}
	return q + confidence*math.Sqrt(math.Log(float64(t))/float64(n))
}
