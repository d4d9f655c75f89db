package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/samuelfneumann/gobandits/bandit"
	"github.com/samuelfneumann/gobandits/experiment"
	"github.com/samuelfneumann/gobandits/experiment/tracker"
	"github.com/samuelfneumann/gobandits/report"
	"github.com/samuelfneumann/gobandits/reward"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

// newModel creates the reward model described by flags. It returns the
// model and the seed to use for the agent.
func newModel(flags *Flags) (reward.Model, uint64, error) {
	t, err := flags.RewardType()
	if err != nil {
		return nil, 0, err
	}

	seed := flags.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	model, err := reward.New(t, seed)
	if err != nil {
		return nil, 0, err
	}
	return model, seed + 1, nil
}

// runExperiment runs b for the runs and steps described by flags,
// printing the arm summary and writing any requested charts
func runExperiment(cmd *cobra.Command, flags *Flags, b *bandit.Bandit,
	subtitle string) error {
	out := cmd.OutOrStdout()
	if err := report.Summary(out, b.Means(), b.Optimal()); err != nil {
		return err
	}

	// Trackers are sized by steps, so they are built only once the
	// experiment has accepted it
	e, err := experiment.New(b, flags.Runs, flags.Steps)
	if err != nil {
		return err
	}

	avg := tracker.NewAverageReward(flags.Steps)
	optimal := tracker.NewOptimalAction(flags.Steps)
	counts := tracker.NewActionCount(flags.Arms)
	e.Register(avg)
	e.Register(optimal)
	e.Register(counts)
	if flags.Progress {
		e.ShowProgress(cmd.ErrOrStderr())
	}

	if err := e.Run(cmd.Context()); err != nil {
		return err
	}

	rewards, percent := avg.Data(), optimal.Data()
	fmt.Fprintf(out, "final average reward: %.4f\n", rewards[len(rewards)-1])
	fmt.Fprintf(out, "final optimal action: %.2f%%\n", percent[len(percent)-1])

	maxMean := floats.Max(b.Means())
	if flags.HTML != "" {
		charts := report.Charts{
			Subtitle:      subtitle,
			AverageReward: rewards,
			OptimalAction: percent,
			ActionCounts:  counts.Data(),
			MaxMean:       maxMean,
		}
		if err := writeFile(flags.HTML, func(f *os.File) error {
			return report.HTML(f, charts)
		}); err != nil {
			return err
		}
	}

	if flags.PNG != "" {
		plot := report.Plot{
			Title:         "Average Reward of " + subtitle,
			XLabel:        "Steps",
			YLabel:        "Average reward",
			Series:        rewards,
			Reference:     maxMean,
			ShowReference: true,
		}
		if err := writeFile(flags.PNG, func(f *os.File) error {
			return report.PNG(f, plot)
		}); err != nil {
			return err
		}
	}

	return nil
}

// writeFile creates the file at path and writes to it with write
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("could not write %v: %w", path, err)
	}
	return f.Close()
}
