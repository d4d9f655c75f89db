// Package experiment implements functionality for running bandit
// experiments.
//
// An Experiment runs a single Bandit for a number of independent runs.
// Before each run the value estimates of the Bandit are reset, while
// the true arm means stay fixed, so that the results of all runs can
// be averaged step by step. The Trajectory of each run is sent to every
// registered tracker.Tracker, which aggregates the data it needs.
package experiment

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/samuelfneumann/gobandits/bandit"
	"github.com/samuelfneumann/gobandits/experiment/tracker"
	"github.com/samuelfneumann/gobandits/utils/progressbar"
)

// progressWidth is the width of the progress bar in characters
const progressWidth = 50

// Experiment runs a Bandit for a number of independent runs
type Experiment struct {
	bandit   *bandit.Bandit
	runs     int
	steps    int
	trackers []tracker.Tracker
	progress io.Writer
}

// New creates and returns a new Experiment that runs b for runs runs
// of steps steps each. The Trajectory of each run is sent to the
// trackers t.
func New(b *bandit.Bandit, runs, steps int,
	t ...tracker.Tracker) (*Experiment, error) {
	if b == nil {
		return nil, fmt.Errorf("new: bandit cannot be nil")
	}
	if runs <= 0 {
		return nil, fmt.Errorf("new: runs must be positive, got %v", runs)
	}
	if steps <= 0 {
		return nil, fmt.Errorf("new: steps must be positive, got %v", steps)
	}

	return &Experiment{
		bandit:   b,
		runs:     runs,
		steps:    steps,
		trackers: t,
	}, nil
}

// Register registers a tracker.Tracker with the Experiment so that
// runs performed after registration are tracked
func (e *Experiment) Register(t tracker.Tracker) {
	e.trackers = append(e.trackers, t)
}

// ShowProgress causes the Experiment to display a progress bar on w
// while running. A nil writer disables the progress bar.
func (e *Experiment) ShowProgress(w io.Writer) {
	e.progress = w
}

// Run performs all runs of the Experiment. The context is checked
// between runs, and Run returns the context's error if it is done.
func (e *Experiment) Run(ctx context.Context) error {
	log.Printf("experiment: starting %v runs of %v steps on %v arms",
		e.runs, e.steps, e.bandit.Arms())

	var bar *progressbar.ManualProgressBar
	if e.progress != nil {
		bar = progressbar.NewManualProgressBar(e.progress, progressWidth,
			e.runs)
		defer bar.Close()
	}

	for run := 0; run < e.runs; run++ {
		if err := ctx.Err(); err != nil {
			log.Printf("experiment: stopped after %v runs: %v", run, err)
			return err
		}

		if err := e.RunOnce(run); err != nil {
			return err
		}

		if bar != nil {
			bar.Increment()
			bar.Display()
		}
	}

	log.Printf("experiment: finished %v runs", e.runs)
	return nil
}

// RunOnce performs a single independent run: the Bandit state is reset,
// the Bandit is run, and its Trajectory is tracked as run number run
func (e *Experiment) RunOnce(run int) error {
	e.bandit.Reset()

	trajectory, err := e.bandit.Run(e.steps)
	if err != nil {
		return fmt.Errorf("runOnce: run %v: %w", run, err)
	}

	e.track(run, trajectory)
	return nil
}

// track sends the Trajectory of a run to each tracker
func (e *Experiment) track(run int, t bandit.Trajectory) {
	for _, tr := range e.trackers {
		tr.Track(run, t)
	}
}
