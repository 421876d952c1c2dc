package bench

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders an HTML page with the active and changed cell counts
// of every run against the tick.
func WriteChart(w io.Writer, title string, results []Result) error {
	if len(results) == 0 {
		return fmt.Errorf("%w: no results to chart", ErrInvalidOptions)
	}
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(
		lineChart(title+": active cells", "active", results, func(s Sample) int { return s.Active }),
		lineChart(title+": changed cells", "changed", results, func(s Sample) int { return s.Changed }),
	)
	return page.Render(w)
}

func lineChart(title, yName string, results []Result, value func(Sample) int) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
		charts.WithXAxisOpts(opts.XAxis{Name: "tick"}),
	)

	longest := results[0]
	for _, r := range results[1:] {
		if len(r.Samples) > len(longest.Samples) {
			longest = r
		}
	}
	ticks := make([]int, len(longest.Samples))
	for i, s := range longest.Samples {
		ticks[i] = s.Tick
	}
	line.SetXAxis(ticks)

	for _, r := range results {
		items := make([]opts.LineData, len(r.Samples))
		for i, s := range r.Samples {
			items[i] = opts.LineData{Value: value(s)}
		}
		line.AddSeries(fmt.Sprintf("seed %d", r.Seed), items)
	}
	return line
}
