// Package tracker implements Trackers, which aggregate the data
// generated by the runs of an experiment
package tracker

import (
	"fmt"

	"github.com/samuelfneumann/gobandits/bandit"
)

// Tracker keeps track of the Trajectories generated in an experiment.
// Track is called once per run with the Trajectory of that run.
type Tracker interface {
	Track(run int, t bandit.Trajectory)
}

// checkSteps panics if a Trajectory does not have the number of steps
// that a Tracker was created for
func checkSteps(name string, steps int, t bandit.Trajectory) {
	if t.Len() != steps {
		panic(fmt.Sprintf("%v: trajectory has %v steps but tracker "+
			"expects %v", name, t.Len(), steps))
	}
}
