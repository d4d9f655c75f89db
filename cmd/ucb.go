package cmd

import (
	"fmt"

	"github.com/samuelfneumann/gobandits/bandit"
	"github.com/spf13/cobra"
)

// UCBCommand returns the command that runs an experiment with an agent
// selecting greedy actions by upper confidence bound
func UCBCommand(flags *Flags) *cobra.Command {
	var confidence float64
	var timeMode string

	cmd := &cobra.Command{
		Use:   "ucb",
		Short: "Run an experiment with an upper confidence bound agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, seed, err := newModel(flags)
			if err != nil {
				return err
			}

			c := bandit.UCBConfig{
				Config: bandit.Config{
					Arms:            flags.Arms,
					Epsilon:         flags.Epsilon,
					OptimisticValue: flags.Optimistic,
				},
				Confidence: confidence,
				Time:       bandit.TimeMode(timeMode),
			}
			b, err := bandit.NewUCB(c, model, seed)
			if err != nil {
				return err
			}

			subtitle := fmt.Sprintf("UCB, c = %v, ε = %v", confidence,
				flags.Epsilon)
			return runExperiment(cmd, flags, b, subtitle)
		},
	}

	cmd.Flags().Float64Var(&confidence, "confidence", 2.0,
		"Confidence level scaling the exploration bonus")
	cmd.Flags().StringVar(&timeMode, "time", string(bandit.Horizon),
		"Time step in the exploration bonus, one of horizon or step")

	return cmd
}
