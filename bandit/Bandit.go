// Package bandit implements agents for the k-armed bandit problem.
//
// A Bandit repeatedly selects one of k arms, pulls it to observe a
// reward drawn from a reward.Model, and updates a sample-average
// estimate Q(a) of the value of the selected arm:
//
//	N(a) <- N(a) + 1
//	Q(a) <- Q(a) + (R - Q(a)) / N(a)
//
// With probability ε the Bandit explores by selecting an arm uniformly
// at random. Otherwise it selects the arm with the highest score, where
// the score is computed by a Scorer. The SampleAverage Scorer gives the
// ε-greedy algorithm, and the UCB Scorer gives ε-greedy selection of
// upper confidence bound actions. Ties between the highest scores are
// always broken uniformly at random.
//
// The true mean value of each arm, q*(a), is drawn from the reward
// model when the Bandit is created and is only redrawn by ResetMeans.
// The arm with the highest true mean is the optimal arm, which is used
// only to report how often the Bandit selected it.
package bandit

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gobandits/reward"
	"github.com/samuelfneumann/gobandits/utils/floatutils"
	"gonum.org/v1/gonum/floats"
)

// Bandit simulates a k-armed bandit experiment. A Bandit is not safe
// for concurrent use.
type Bandit struct {
	arms       int
	epsilon    float64
	optimistic float64

	model  reward.Model
	scorer Scorer
	rng    *rand.Rand

	q      []float64 // Estimated value of each arm, Q(a)
	n      []int     // Number of times each arm was selected, N(a)
	scores []float64 // Scratch space for the Scorer

	means   []float64 // True mean value of each arm, q*(a)
	optimal int
}

// New creates a new ε-greedy Bandit that draws rewards from model.
// The seed is used for action selection only; the model uses its own
// random source.
func New(c Config, model reward.Model, seed uint64) (*Bandit, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	return newBandit(c, model, SampleAverage{}, seed)
}

// NewUCB creates a new Bandit that, when acting greedily, selects the
// arm with the highest upper confidence bound
func NewUCB(c UCBConfig, model reward.Model, seed uint64) (*Bandit, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newUCB: %w", err)
	}

	mode := c.Time
	if mode == "" {
		mode = Horizon
	}
	scorer := UCB{Confidence: c.Confidence, Time: mode}

	return newBandit(c.Config, model, scorer, seed)
}

// newBandit creates a Bandit which selects greedy actions using scorer
func newBandit(c Config, model reward.Model, scorer Scorer,
	seed uint64) (*Bandit, error) {
	if model == nil {
		return nil, fmt.Errorf("new: %w: reward model cannot be nil",
			ErrInvalidConfig)
	}

	b := &Bandit{
		arms:       c.Arms,
		epsilon:    c.Epsilon,
		optimistic: c.OptimisticValue,
		model:      model,
		scorer:     scorer,
		rng:        rand.New(rand.NewSource(seed)),
		q:          make([]float64, c.Arms),
		n:          make([]int, c.Arms),
		scores:     make([]float64, c.Arms),
	}
	b.ResetMeans()
	b.Reset()

	return b, nil
}

// Reset clears the value estimates and selection counts of the Bandit.
// Each Q(a) is set to the optimistic initial value and each N(a) to
// zero. Reset should be called before each independent Run.
func (b *Bandit) Reset() {
	for a := range b.q {
		b.q[a] = b.optimistic
		b.n[a] = 0
	}
}

// ResetMeans draws new true mean values for each arm from the reward
// model and recomputes the optimal arm
func (b *Bandit) ResetMeans() {
	means := b.model.Means(b.arms)
	if len(means) != b.arms {
		panic(fmt.Sprintf("resetMeans: reward model returned %v means "+
			"for %v arms", len(means), b.arms))
	}

	b.means = means
	b.optimal = floats.MaxIdx(b.means)
}

// Run runs the Bandit for steps steps, returning the Trajectory of the
// Run. Value estimates carry over between calls to Run unless Reset is
// called.
func (b *Bandit) Run(steps int) (Trajectory, error) {
	if steps < 0 {
		return Trajectory{}, fmt.Errorf("run: steps must be non-negative, "+
			"got %v", steps)
	}

	trajectory := newTrajectory(steps)
	for step := 1; step <= steps; step++ {
		action := b.selectAction(step, steps)
		r := b.pull(action)
		b.update(action, r)

		trajectory.append(action, r, action == b.optimal)
	}

	return trajectory, nil
}

// selectAction selects an action ε-greedily with respect to the scores
// computed by the Bandit's Scorer
func (b *Bandit) selectAction(step, horizon int) int {
	if b.rng.Float64() < b.epsilon {
		return b.rng.Intn(b.arms)
	}

	b.scorer.Score(b.scores, b.q, b.n, step, horizon)
	return b.argmax(b.scores)
}

// argmax returns the index of the maximum value in values, breaking
// ties uniformly at random
func (b *Bandit) argmax(values []float64) int {
	_, ties := floatutils.MaxSlice(values)
	if len(ties) == 1 {
		return ties[0]
	}
	return ties[b.rng.Intn(len(ties))]
}

// pull samples a reward for action from the reward model
func (b *Bandit) pull(action int) float64 {
	return b.model.Sample(b.means[action])
}

// update performs the incremental sample-average update of the value
// estimate of action
func (b *Bandit) update(action int, r float64) {
	b.n[action]++
	b.q[action] += (r - b.q[action]) / float64(b.n[action])
}

// Arms returns the number of arms of the Bandit
func (b *Bandit) Arms() int {
	return b.arms
}

// Epsilon returns the probability with which the Bandit explores
func (b *Bandit) Epsilon() float64 {
	return b.epsilon
}

// Q returns a copy of the value estimate of each arm
func (b *Bandit) Q() []float64 {
	return append([]float64(nil), b.q...)
}

// N returns a copy of the number of times each arm was selected since
// the last Reset
func (b *Bandit) N() []int {
	return append([]int(nil), b.n...)
}

// Means returns a copy of the true mean value of each arm
func (b *Bandit) Means() []float64 {
	return append([]float64(nil), b.means...)
}

// Optimal returns the arm with the highest true mean value
func (b *Bandit) Optimal() int {
	return b.optimal
}
