package cmd

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gobandits/reward"
	"github.com/spf13/cobra"
)

// Flags holds the settings shared by all experiment commands
type Flags struct {
	Arms       int
	Runs       int
	Steps      int
	Epsilon    float64
	Optimistic float64
	Seed       uint64
	Reward     string
	HTML       string
	PNG        string
	Progress   bool
}

// DefaultFlags returns the default experiment settings
func DefaultFlags() *Flags {
	return &Flags{
		Arms:     10,
		Runs:     2000,
		Steps:    1000,
		Epsilon:  0.1,
		Reward:   "gaussian",
		Progress: true,
	}
}

// AddFlags registers f as persistent flags of cmd
func (f *Flags) AddFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.IntVar(&f.Arms, "arms", f.Arms, "Number of arms")
	fs.IntVar(&f.Runs, "runs", f.Runs, "Number of independent runs")
	fs.IntVar(&f.Steps, "steps", f.Steps, "Number of steps in each run")
	fs.Float64Var(&f.Epsilon, "epsilon", f.Epsilon, "Probability of exploring")
	fs.Float64Var(&f.Optimistic, "optimistic", f.Optimistic,
		"Initial value estimate of each arm")
	fs.Uint64Var(&f.Seed, "seed", f.Seed,
		"Random seed, 0 seeds from the current time")
	fs.StringVar(&f.Reward, "reward", f.Reward,
		"Reward model, one of gaussian or bernoulli")
	fs.StringVar(&f.HTML, "html", f.HTML, "Path to write HTML charts to")
	fs.StringVar(&f.PNG, "png", f.PNG,
		"Path to write a PNG plot of the average reward to")
	fs.BoolVar(&f.Progress, "progress", f.Progress, "Display a progress bar")
}

// RewardType returns the reward model type named by the reward flag
func (f *Flags) RewardType() (reward.Type, error) {
	switch strings.ToLower(f.Reward) {
	case "gaussian":
		return reward.TypeGaussian, nil
	case "bernoulli":
		return reward.TypeBernoulli, nil
	}
	return "", fmt.Errorf("no such reward model %q", f.Reward)
}
