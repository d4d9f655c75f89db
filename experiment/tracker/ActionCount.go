package tracker

import (
	"fmt"

	"github.com/samuelfneumann/gobandits/bandit"
)

// ActionCount tracks the total number of times each arm was selected
// over all runs
type ActionCount struct {
	counts []int
}

// NewActionCount returns a new ActionCount Tracker for a bandit with
// arms arms
func NewActionCount(arms int) *ActionCount {
	return &ActionCount{counts: make([]int, arms)}
}

// Track counts the actions taken in a run
func (c *ActionCount) Track(_ int, t bandit.Trajectory) {
	for _, a := range t.Actions {
		if a < 0 || a >= len(c.counts) {
			panic(fmt.Sprintf("actionCount: action %v out of range for %v "+
				"arms", a, len(c.counts)))
		}
		c.counts[a]++
	}
}

// Data returns the number of times each arm was selected
func (c *ActionCount) Data() []int {
	return append([]int(nil), c.counts...)
}
