package reward

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian is a Model whose arm means are drawn from a standard normal
// distribution and whose rewards are normally distributed with unit
// variance around the arm mean
type Gaussian struct {
	source rand.Source
	prior  distuv.Normal
}

// NewGaussian returns a new Gaussian reward model
func NewGaussian(seed uint64) *Gaussian {
	source := rand.NewSource(seed)
	prior := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: source}

	return &Gaussian{source: source, prior: prior}
}

// Means draws the true mean value of each arm i.i.d. from N(0, 1)
func (g *Gaussian) Means(arms int) []float64 {
	means := make([]float64, arms)
	for i := range means {
		means[i] = g.prior.Rand()
	}
	return means
}

// Sample draws a reward from N(mean, 1)
func (g *Gaussian) Sample(mean float64) float64 {
	dist := distuv.Normal{Mu: mean, Sigma: 1.0, Src: g.source}
	return dist.Rand()
}
