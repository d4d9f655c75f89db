package bandit

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/gobandits/reward"
	"github.com/samuelfneumann/gobandits/utils/floatutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed is a reward.Model with predetermined means whose rewards are
// always exactly the arm mean
type fixed struct {
	means []float64
}

func (f fixed) Means(arms int) []float64 {
	return append([]float64(nil), f.means[:arms]...)
}

func (f fixed) Sample(mean float64) float64 {
	return mean
}

// sampleMeans computes the arithmetic mean of the rewards received for
// each arm in a trajectory, and the number of times each arm was chosen
func sampleMeans(arms int, t Trajectory) ([]float64, []int) {
	sums := make([]float64, arms)
	counts := make([]int, arms)
	for i, a := range t.Actions {
		sums[a] += t.Rewards[i]
		counts[a]++
	}

	means := make([]float64, arms)
	for a := range means {
		if counts[a] > 0 {
			means[a] = sums[a] / float64(counts[a])
		}
	}
	return means, counts
}

func TestNewInvalidConfig(t *testing.T) {
	model := reward.NewGaussian(1)

	tests := []struct {
		name   string
		config Config
	}{
		{"zero arms", Config{Arms: 0, Epsilon: 0.1}},
		{"negative arms", Config{Arms: -3, Epsilon: 0.1}},
		{"negative epsilon", Config{Arms: 10, Epsilon: -0.01}},
		{"epsilon above one", Config{Arms: 10, Epsilon: 1.01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.config, model, 1)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}

	_, err := New(Config{Arms: 2}, nil, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunNegativeSteps(t *testing.T) {
	b, err := New(Config{Arms: 3, Epsilon: 0.1}, reward.NewGaussian(1), 1)
	require.NoError(t, err)

	_, err = b.Run(-1)
	assert.Error(t, err)

	traj, err := b.Run(0)
	require.NoError(t, err)
	assert.Equal(t, 0, traj.Len())
}

func TestRunLengths(t *testing.T) {
	for _, steps := range []int{1, 7, 500} {
		b, err := New(Config{Arms: 10, Epsilon: 0.1}, reward.NewGaussian(2), 3)
		require.NoError(t, err)

		traj, err := b.Run(steps)
		require.NoError(t, err)
		assert.Len(t, traj.Actions, steps)
		assert.Len(t, traj.Rewards, steps)
		assert.Len(t, traj.Optimal, steps)
		assert.Equal(t, steps, traj.Len())
	}
}

func TestOptimalFlags(t *testing.T) {
	b, err := New(Config{Arms: 5, Epsilon: 0.5}, reward.NewBernoulli(4), 5)
	require.NoError(t, err)

	traj, err := b.Run(1000)
	require.NoError(t, err)

	for i, a := range traj.Actions {
		if a == b.Optimal() {
			assert.Equal(t, 1, traj.Optimal[i])
		} else {
			assert.Equal(t, 0, traj.Optimal[i])
		}
	}
}

func TestOptimalIsArgmaxOfMeans(t *testing.T) {
	b, err := New(Config{Arms: 4}, fixed{[]float64{0.1, 0.9, -2, 0.3}}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Optimal())
	assert.Equal(t, []float64{0.1, 0.9, -2, 0.3}, b.Means())
}

func TestIncrementalMean(t *testing.T) {
	configs := []Config{
		{Arms: 10, Epsilon: 0.1},
		{Arms: 10, Epsilon: 1.0},
		{Arms: 3, Epsilon: 0.0, OptimisticValue: 5},
	}

	for _, c := range configs {
		b, err := New(c, reward.NewGaussian(11), 12)
		require.NoError(t, err)

		traj, err := b.Run(2000)
		require.NoError(t, err)

		means, counts := sampleMeans(c.Arms, traj)
		q, n := b.Q(), b.N()
		for a := 0; a < c.Arms; a++ {
			assert.Equal(t, counts[a], n[a], "arm %v", a)
			if counts[a] > 0 {
				assert.InDelta(t, means[a], q[a], 1e-9, "arm %v", a)
			} else {
				assert.Equal(t, c.OptimisticValue, q[a], "arm %v", a)
			}
		}
	}
}

func TestGreedyOnly(t *testing.T) {
	const arms = 6
	b, err := New(Config{Arms: arms, Epsilon: 0}, reward.NewGaussian(21), 22)
	require.NoError(t, err)

	traj, err := b.Run(1000)
	require.NoError(t, err)

	// Replay the value estimates and check that each action was greedy
	q := make([]float64, arms)
	n := make([]int, arms)
	for i, a := range traj.Actions {
		_, greedy := floatutils.MaxSlice(q)
		assert.Contains(t, greedy, a, "step %v was not greedy", i)

		n[a]++
		q[a] += (traj.Rewards[i] - q[a]) / float64(n[a])
	}
}

func TestExploreOnlyIsUniform(t *testing.T) {
	const arms = 10
	const steps = 100_000
	b, err := New(Config{Arms: arms, Epsilon: 1}, reward.NewGaussian(31), 32)
	require.NoError(t, err)

	_, err = b.Run(steps)
	require.NoError(t, err)

	expected := float64(steps) / arms
	for a, count := range b.N() {
		assert.InDelta(t, expected, float64(count), 0.05*expected,
			"arm %v selected %v times", a, count)
	}
}

func TestReset(t *testing.T) {
	b, err := New(Config{Arms: 4, Epsilon: 0.2, OptimisticValue: 5},
		reward.NewGaussian(41), 42)
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 5, 5, 5}, b.Q())
	assert.Equal(t, []int{0, 0, 0, 0}, b.N())

	means := b.Means()
	for i := 0; i < 3; i++ {
		_, err = b.Run(100)
		require.NoError(t, err)

		b.Reset()
		b.Reset()
		assert.Equal(t, []float64{5, 5, 5, 5}, b.Q())
		assert.Equal(t, []int{0, 0, 0, 0}, b.N())
	}

	// Resetting the state never redraws the true means
	assert.Equal(t, means, b.Means())
}

func TestResetMeans(t *testing.T) {
	b, err := New(Config{Arms: 8, Epsilon: 0.1}, reward.NewGaussian(51), 52)
	require.NoError(t, err)

	before := b.Means()
	b.ResetMeans()
	after := b.Means()

	assert.Len(t, after, 8)
	assert.NotEqual(t, before, after)

	max, ties := floatutils.MaxSlice(after)
	assert.Equal(t, ties[0], b.Optimal())
	assert.Equal(t, max, after[b.Optimal()])
}

func TestTieBreakingFairness(t *testing.T) {
	const arms = 4
	const trials = 40_000
	b, err := New(Config{Arms: arms, Epsilon: 0}, reward.NewGaussian(61), 62)
	require.NoError(t, err)

	// All estimates are tied at the start of every run
	counts := make([]int, arms)
	for i := 0; i < trials; i++ {
		b.Reset()
		traj, err := b.Run(1)
		require.NoError(t, err)
		counts[traj.Actions[0]]++
	}

	expected := float64(trials) / arms
	for a, count := range counts {
		assert.InDelta(t, expected, float64(count), 0.05*expected,
			"arm %v selected %v times", a, count)
	}
}

func TestArgmaxPartialTies(t *testing.T) {
	b, err := New(Config{Arms: 5}, reward.NewGaussian(71), 72)
	require.NoError(t, err)

	values := []float64{1, 3, 3, -1, 3}
	counts := map[int]int{}
	for i := 0; i < 30_000; i++ {
		counts[b.argmax(values)]++
	}

	assert.Len(t, counts, 3)
	for _, a := range []int{1, 2, 4} {
		assert.InDelta(t, 10_000, counts[a], 500, "arm %v", a)
	}
}

func TestDeterministicConvergence(t *testing.T) {
	model := fixed{[]float64{1.0, 0.0}}
	b, err := New(Config{Arms: 2, Epsilon: 0}, model, 81)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Optimal())

	traj, err := b.Run(50)
	require.NoError(t, err)

	// Once arm 0 is pulled its estimate is 1 and it is always greedy.
	// Until then, arm 1 keeps an estimate of 0 and stays tied with arm 0.
	first := -1
	for i, a := range traj.Actions {
		if a == 0 {
			first = i
			break
		}
	}
	require.NotEqual(t, -1, first, "arm 0 was never selected")
	assert.Less(t, first, 20)

	for i := first; i < traj.Len(); i++ {
		assert.Equal(t, 0, traj.Actions[i], "step %v", i)
		assert.Equal(t, 1, traj.Optimal[i], "step %v", i)
	}

	q, n := b.Q(), b.N()
	assert.Equal(t, 1.0, q[0])
	assert.Equal(t, 0.0, q[1])
	assert.Equal(t, 50-first, n[0])
	assert.Equal(t, first, n[1])
}

func TestSeeded(t *testing.T) {
	run := func() Trajectory {
		b, err := New(Config{Arms: 10, Epsilon: 0.1}, reward.NewGaussian(91), 92)
		require.NoError(t, err)
		traj, err := b.Run(200)
		require.NoError(t, err)
		return traj
	}

	assert.Equal(t, run(), run())
}

func BenchmarkRun(b *testing.B) {
	bandit, err := New(Config{Arms: 10, Epsilon: 0.1}, reward.NewGaussian(1), 2)
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		bandit.Reset()
		if _, err := bandit.Run(1000); err != nil {
			b.Fatal(err)
		}
	}
}
