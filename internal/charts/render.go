package charts

import (
	"bytes"
	"fmt"

	"github.com/shivamratti13/youtube-comment-analysis/internal/models"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	barTitle   = "Sentiment Count Bar Graph"
	donutTitle = "Sentiment Distribution Donut Chart"

	chartWidth  = "720px"
	chartHeight = "420px"
)

// RenderBar draws one bar per label present in the tally.
// The result is a standalone HTML document.
func RenderBar(t Tally) (string, error) {
	entries := t.Entries()

	names := make([]string, 0, len(entries))
	data := make([]opts.BarData, 0, len(entries))
	for _, e := range entries {
		names = append(names, string(e.Label))
		data = append(data, opts.BarData{
			Name:      string(e.Label),
			Value:     e.Count,
			ItemStyle: &opts.ItemStyle{Color: colorFor(e.Label)},
		})
	}

	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{
			PageTitle: barTitle,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		echarts.WithTitleOpts(opts.Title{Title: barTitle}),
		echarts.WithXAxisOpts(opts.XAxis{Name: "Sentiment"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)
	bar.SetXAxis(names).AddSeries("Count", data)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render bar chart: %w", err)
	}
	return buf.String(), nil
}

// RenderDonut draws the share of each label as a ring with a 40% hole.
func RenderDonut(t Tally) (string, error) {
	entries := t.Entries()

	data := make([]opts.PieData, 0, len(entries))
	for _, e := range entries {
		data = append(data, opts.PieData{
			Name:      string(e.Label),
			Value:     e.Count,
			ItemStyle: &opts.ItemStyle{Color: colorFor(e.Label)},
		})
	}

	pie := echarts.NewPie()
	pie.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{
			PageTitle: donutTitle,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		echarts.WithTitleOpts(opts.Title{Title: donutTitle}),
	)
	pie.AddSeries("Sentiment", data).
		SetSeriesOptions(
			echarts.WithPieChartOpts(opts.PieChart{
				Radius: []string{"40%", "75%"},
			}),
			echarts.WithLabelOpts(opts.Label{Formatter: "{b}: {d}%"}),
		)

	var buf bytes.Buffer
	if err := pie.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render donut chart: %w", err)
	}
	return buf.String(), nil
}

func colorFor(label models.SentimentLabel) string {
	if c, ok := Colors[label]; ok {
		return c
	}
	return Colors[models.Unknown]
}
