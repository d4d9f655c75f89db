// Package cmd implements the command line interface for running k-armed
// bandit experiments
package cmd

import (
	"github.com/spf13/cobra"
)

// RootCommand returns the root command of the bandits CLI
func RootCommand() *cobra.Command {
	flags := DefaultFlags()

	cmd := &cobra.Command{
		Use:   "bandits",
		Short: "Simulate k-armed bandit experiments",
		Long: "Simulate k-armed bandit experiments. Each experiment runs a " +
			"single agent for many independent runs on a fixed set of arms " +
			"and reports the average reward and the percentage of optimal " +
			"actions at each step.",
		SilenceUsage: true,
	}
	flags.AddFlags(cmd)

	cmd.AddCommand(
		EGreedyCommand(flags),
		UCBCommand(flags),
	)

	return cmd
}
