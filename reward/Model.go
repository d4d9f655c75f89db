// Package reward implements the probability models of a k-armed bandit.
//
// A Model generates the true mean value of each arm once per episode and
// samples a stochastic reward for an arm given its mean value. Models
// own their random source, which is seeded by the caller so that
// experiments are reproducible.
package reward

import "fmt"

// Model generates true arm means and samples rewards for them
type Model interface {
	// Means returns one true mean value for each of arms arms
	Means(arms int) []float64

	// Sample draws a single reward for an arm with the given true mean
	Sample(mean float64) float64
}

// Type describes the different reward models that are available
type Type string

// Available Model types
const (
	TypeGaussian  Type = "Gaussian"
	TypeBernoulli Type = "Bernoulli"
)

// New returns a new Model of type t which draws random numbers from a
// source seeded with seed
func New(t Type, seed uint64) (Model, error) {
	switch t {
	case TypeGaussian:
		return NewGaussian(seed), nil

	case TypeBernoulli:
		return NewBernoulli(seed), nil
	}

	return nil, fmt.Errorf("new: no such reward model %q", t)
}
