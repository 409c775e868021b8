package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderBookingsChart writes an HTML bar chart with one bar per venue showing
// how many upcoming bookings it has. labels and counts are index-aligned.
func RenderBookingsChart(w io.Writer, owner string, labels []string, counts []int) error {
	if len(labels) != len(counts) {
		return fmt.Errorf("chart has %d labels but %d values", len(labels), len(counts))
	}

	bars := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, opts.BarData{Value: c})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Upcoming bookings",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Upcoming bookings",
			Subtitle: owner,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Bookings"}),
	)

	bar.SetXAxis(labels).AddSeries("Upcoming", bars,
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
	)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
