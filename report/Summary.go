// Package report renders the results of bandit experiments: a console
// summary of the true arm means, HTML charts, and PNG line plots
package report

import (
	"fmt"
	"io"
	"strings"
)

var rule = strings.Repeat("-", 35)

// Summary writes the true mean value of each arm to w, one per line,
// marking the optimal arm with a star
func Summary(w io.Writer, means []float64, optimal int) error {
	if optimal < 0 || optimal >= len(means) {
		return fmt.Errorf("summary: optimal arm %v out of range for %v "+
			"arms", optimal, len(means))
	}

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Expected rewards:")
	fmt.Fprintln(&b, rule)
	for i, m := range means {
		if i == optimal {
			fmt.Fprintf(&b, "q_star %d = %v  *\n", i, m)
		} else {
			fmt.Fprintf(&b, "q_star %d = %v\n", i, m)
		}
	}
	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(w, b.String())
	return err
}
