// Package charts renders the journal's performance charts as SVG.
package charts

import (
	"io"
	"math"
	"sort"

	svg "github.com/ajstarks/svgo"

	"trade-journal-go/internal/stats"
)

const (
	chartWidth  = 640
	chartHeight = 360
	margin      = 40
)

// RenderCategoryBars draws one bar per category key, gains above the
// axis and losses below so the sign is readable at a glance. Bar height
// is proportional to |result| over the largest |result| in the data.
// Empty input renders the placeholder text instead of an empty chart.
func RenderCategoryBars(w io.Writer, data map[string]stats.Bucket, title, noData string) {
	canvas := svg.New(w)
	canvas.Start(chartWidth, chartHeight)
	defer canvas.End()

	canvas.Rect(0, 0, chartWidth, chartHeight, "fill:#1e1e2e")
	canvas.Text(margin, 24, title, "fill:#cdd6f4;font-size:16px;font-family:sans-serif")

	keys := make([]string, 0, len(data))
	for k, b := range data {
		if b.Count > 0 {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		canvas.Text(chartWidth/2, chartHeight/2, noData,
			"fill:#6c7086;font-size:14px;font-family:sans-serif;text-anchor:middle")
		return
	}
	sort.Strings(keys)

	maxAbs := 1.0 // minimum denominator, avoids division by zero
	for _, k := range keys {
		if v := math.Abs(data[k].Result); v > maxAbs {
			maxAbs = v
		}
	}

	axisY := chartHeight / 2
	laneHeight := axisY - margin
	slot := (chartWidth - 2*margin) / len(keys)
	barWidth := slot * 3 / 5

	canvas.Line(margin, axisY, chartWidth-margin, axisY, "stroke:#45475a;stroke-width:1")

	for i, k := range keys {
		b := data[k]
		h := int(math.Abs(b.Result) / maxAbs * float64(laneHeight))
		x := margin + i*slot + (slot-barWidth)/2
		if b.Result >= 0 {
			canvas.Rect(x, axisY-h, barWidth, h, "fill:#a6e3a1")
		} else {
			canvas.Rect(x, axisY, barWidth, h, "fill:#f38ba8")
		}
		canvas.Text(x+barWidth/2, chartHeight-margin/2, k,
			"fill:#cdd6f4;font-size:11px;font-family:sans-serif;text-anchor:middle")
	}
}
