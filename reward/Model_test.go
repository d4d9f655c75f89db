package reward

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestNew(t *testing.T) {
	g, err := New(TypeGaussian, 1)
	require.NoError(t, err)
	assert.IsType(t, &Gaussian{}, g)

	b, err := New(TypeBernoulli, 1)
	require.NoError(t, err)
	assert.IsType(t, &Bernoulli{}, b)

	_, err = New(Type("Poisson"), 1)
	assert.Error(t, err)
}

func TestGaussianMeans(t *testing.T) {
	g := NewGaussian(42)

	means := g.Means(10)
	assert.Len(t, means, 10)

	// The prior is N(0, 1)
	means = g.Means(50_000)
	assert.InDelta(t, 0.0, stat.Mean(means, nil), 0.05)
	assert.InDelta(t, 1.0, stat.StdDev(means, nil), 0.05)
}

func TestGaussianSample(t *testing.T) {
	g := NewGaussian(7)

	const n = 50_000
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = g.Sample(1.5)
	}
	assert.InDelta(t, 1.5, stat.Mean(samples, nil), 0.05)
	assert.InDelta(t, 1.0, stat.StdDev(samples, nil), 0.05)
}

func TestGaussianSeeded(t *testing.T) {
	a, b := NewGaussian(99), NewGaussian(99)
	assert.Equal(t, a.Means(5), b.Means(5))
	assert.Equal(t, a.Sample(0.3), b.Sample(0.3))
}

func TestBernoulliMeans(t *testing.T) {
	b := NewBernoulli(42)

	means := b.Means(10_000)
	assert.Len(t, means, 10_000)
	for _, m := range means {
		assert.True(t, m >= 0 && m < 1, "mean %v outside [0, 1)", m)
	}
	assert.InDelta(t, 0.5, stat.Mean(means, nil), 0.02)
}

func TestBernoulliSample(t *testing.T) {
	b := NewBernoulli(3)
	const mean = 0.6
	const n = 50_000

	var total float64
	for i := 0; i < n; i++ {
		r := b.Sample(mean)
		assert.True(t, r == 0 || r == mean, "reward %v is neither 0 nor %v", r, mean)
		total += r
	}

	// Success pays out the mean, so the expected reward is mean squared
	assert.InDelta(t, math.Pow(mean, 2), total/n, 0.01)
}

func TestBernoulliSampleEdges(t *testing.T) {
	b := NewBernoulli(5)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0.0, b.Sample(0))
	}
}
