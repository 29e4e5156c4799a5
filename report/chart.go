package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/yyyoichi/stegotext/harness"
)

// WriteChart renders an HTML page with two bar charts, mean timings and
// success rates, one category per cover / secret / method.
func WriteChart(w io.Writer, results []harness.AggregateResult) error {
	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = fmt.Sprintf("%s / %s / %s", r.Cover, r.Secret, r.Method)
	}

	timing := newBar("Embed / Extract time", "ms", labels)
	embed := make([]opts.BarData, len(results))
	extract := make([]opts.BarData, len(results))
	for i, r := range results {
		embed[i] = opts.BarData{Value: r.EmbedMS}
		extract[i] = opts.BarData{Value: r.ExtractMS}
	}
	timing.AddSeries("Embed Time (ms)", embed).
		AddSeries("Extract Time (ms)", extract)

	success := newBar("Success rate", "%", labels)
	for _, f := range harness.Formats() {
		data := make([]opts.BarData, len(results))
		for i, r := range results {
			data[i] = opts.BarData{Value: r.Success[f]}
		}
		success.AddSeries(fmt.Sprintf("Success %s (%%)", f), data)
	}

	page := components.NewPage()
	page.AddCharts(timing, success)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

func newBar(title, unit string, labels []string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: unit,
			Type: "value",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
	)
	bar.SetXAxis(labels)
	return bar
}
