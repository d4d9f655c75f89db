package cmd

import (
	"fmt"

	"github.com/samuelfneumann/gobandits/bandit"
	"github.com/spf13/cobra"
)

// EGreedyCommand returns the command that runs an ε-greedy experiment
func EGreedyCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "egreedy",
		Short: "Run an experiment with an ε-greedy agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, seed, err := newModel(flags)
			if err != nil {
				return err
			}

			c := bandit.Config{
				Arms:            flags.Arms,
				Epsilon:         flags.Epsilon,
				OptimisticValue: flags.Optimistic,
			}
			b, err := bandit.New(c, model, seed)
			if err != nil {
				return err
			}

			subtitle := fmt.Sprintf("ε-greedy, ε = %v", flags.Epsilon)
			return runExperiment(cmd, flags, b, subtitle)
		},
	}
}
