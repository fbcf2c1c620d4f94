package charts

import (
	"errors"
	"io"

	svg "github.com/ajstarks/svgo"

	"trade-journal-go/internal/stats"
)

// ErrInsufficientData is returned when a series is too short to plot.
var ErrInsufficientData = errors.New("insufficient data: need at least 2 points")

// RenderCumulativeArea draws the cumulative result series as a filled
// area chart. The y domain always includes zero so the zero-reference
// baseline stays visible whatever the data's sign.
func RenderCumulativeArea(w io.Writer, series []stats.Point, title string) error {
	if len(series) < 2 {
		return ErrInsufficientData
	}

	minVal, maxVal := 0.0, 0.0
	for _, p := range series {
		if p.Value < minVal {
			minVal = p.Value
		}
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	span := maxVal - minVal
	if span == 0 {
		span = 1 // flat all-zero series still needs a defined mapping
	}

	plotW := chartWidth - 2*margin
	plotH := chartHeight - 2*margin
	xAt := func(i int) int {
		return margin + i*plotW/(len(series)-1)
	}
	yAt := func(v float64) int {
		return margin + int((maxVal-v)/span*float64(plotH))
	}

	canvas := svg.New(w)
	canvas.Start(chartWidth, chartHeight)
	defer canvas.End()

	canvas.Rect(0, 0, chartWidth, chartHeight, "fill:#1e1e2e")
	canvas.Text(margin, 24, title, "fill:#cdd6f4;font-size:16px;font-family:sans-serif")

	// Zero-reference line.
	zeroY := yAt(0)
	canvas.Line(margin, zeroY, chartWidth-margin, zeroY, "stroke:#45475a;stroke-width:1;stroke-dasharray:4")

	// Filled area down to the zero baseline, then the trend line on top.
	xs := make([]int, 0, len(series)+2)
	ys := make([]int, 0, len(series)+2)
	for i, p := range series {
		xs = append(xs, xAt(i))
		ys = append(ys, yAt(p.Value))
	}
	lineXs := make([]int, len(xs))
	lineYs := make([]int, len(ys))
	copy(lineXs, xs)
	copy(lineYs, ys)

	xs = append(xs, xAt(len(series)-1), xAt(0))
	ys = append(ys, zeroY, zeroY)
	canvas.Polygon(xs, ys, "fill:#89b4fa;fill-opacity:0.25")
	canvas.Polyline(lineXs, lineYs, "fill:none;stroke:#89b4fa;stroke-width:2")

	canvas.Text(margin, chartHeight-margin/2, series[0].Date,
		"fill:#6c7086;font-size:11px;font-family:sans-serif")
	canvas.Text(chartWidth-margin, chartHeight-margin/2, series[len(series)-1].Date,
		"fill:#6c7086;font-size:11px;font-family:sans-serif;text-anchor:end")

	return nil
}
