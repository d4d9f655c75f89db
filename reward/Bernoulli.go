package reward

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Bernoulli is a Model whose arm means are drawn uniformly from [0, 1).
// Pulling an arm succeeds with probability equal to the arm mean, and
// a success pays out the arm mean itself. A pull therefore returns
// either 0 or mean, and the expected reward of an arm is mean².
type Bernoulli struct {
	source rand.Source
	prior  distuv.Uniform
}

// NewBernoulli returns a new Bernoulli reward model
func NewBernoulli(seed uint64) *Bernoulli {
	source := rand.NewSource(seed)
	prior := distuv.Uniform{Min: 0.0, Max: 1.0, Src: source}

	return &Bernoulli{source: source, prior: prior}
}

// Means draws the true mean value of each arm i.i.d. from U[0, 1)
func (b *Bernoulli) Means(arms int) []float64 {
	means := make([]float64, arms)
	for i := range means {
		means[i] = b.prior.Rand()
	}
	return means
}

// Sample draws Bernoulli(mean) and scales the outcome by mean
func (b *Bernoulli) Sample(mean float64) float64 {
	dist := distuv.Bernoulli{P: mean, Src: b.source}
	return dist.Rand() * mean
}
