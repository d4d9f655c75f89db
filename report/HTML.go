package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts holds the aggregated results of an experiment that are
// rendered by HTML
type Charts struct {
	Subtitle      string    // Describes the agent, e.g. "ε-greedy, ε = 0.1"
	AverageReward []float64 // Average reward at each step
	OptimalAction []float64 // Percentage of optimal actions at each step
	ActionCounts  []int     // Number of selections of each arm
	MaxMean       float64   // Highest true arm mean
}

// HTML renders an HTML page to w with three charts: the average reward
// at each step against the highest true arm mean, the percentage of
// optimal actions at each step, and a histogram of the actions taken
func HTML(w io.Writer, c Charts) error {
	if len(c.AverageReward) != len(c.OptimalAction) {
		return fmt.Errorf("html: %v average rewards but %v optimal action "+
			"percentages", len(c.AverageReward), len(c.OptimalAction))
	}

	page := components.NewPage()
	page.AddCharts(
		averageRewardChart(c),
		optimalActionChart(c),
		actionHistogram(c),
	)

	return page.Render(w)
}

// averageRewardChart plots the average reward at each step
func averageRewardChart(c Charts) *charts.Line {
	rewards := make([]opts.LineData, len(c.AverageReward))
	best := make([]opts.LineData, len(c.AverageReward))
	for i, r := range c.AverageReward {
		rewards[i] = opts.LineData{Value: r}
		best[i] = opts.LineData{Value: c.MaxMean}
	}

	line := newLine("Average Reward", c.Subtitle, "Average reward")
	line.SetXAxis(stepLabels(len(c.AverageReward))).
		AddSeries("Average reward", rewards).
		AddSeries("max q*", best,
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))

	return line
}

// optimalActionChart plots the percentage of optimal actions at each
// step
func optimalActionChart(c Charts) *charts.Line {
	percent := make([]opts.LineData, len(c.OptimalAction))
	for i, p := range c.OptimalAction {
		percent[i] = opts.LineData{Value: p}
	}

	line := newLine("Optimal Action", c.Subtitle, "Optimal action (%)")
	line.SetXAxis(stepLabels(len(c.OptimalAction))).
		AddSeries("Optimal action", percent)

	return line
}

// actionHistogram plots the number of times each arm was selected
func actionHistogram(c Charts) *charts.Bar {
	counts := make([]opts.BarData, len(c.ActionCounts))
	labels := make([]string, len(c.ActionCounts))
	for a, n := range c.ActionCounts {
		counts[a] = opts.BarData{Value: n}
		labels[a] = fmt.Sprintf("%d", a)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeInfographic,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Actions",
			Subtitle: c.Subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Actions"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Frequency"}),
	)
	bar.SetXAxis(labels).AddSeries("Frequency", counts)

	return bar
}

// newLine returns a new line chart with steps on the x-axis
func newLine(title, subtitle, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeInfographic,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Steps"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	return line
}

// stepLabels returns the labels 1, 2, ..., n
func stepLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+1)
	}
	return labels
}
