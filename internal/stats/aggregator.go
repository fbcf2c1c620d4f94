// Package stats reduces a collection of trade records into summary
// metrics, per-category breakdowns and a cumulative result series.
package stats

import (
	"sort"
	"time"

	"trade-journal-go/internal/models"
)

// Window selects the time range a report covers. All comparisons use
// calendar dates at UTC midnight.
type Window string

const (
	WindowAll   Window = "all"
	WindowToday Window = "today"
	WindowWeek  Window = "week"  // since the most recent Sunday, inclusive
	WindowMonth Window = "month" // since the first day of the current month
)

// ParseWindow normalizes a window name, defaulting to WindowAll.
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowToday, WindowWeek, WindowMonth:
		return Window(s)
	default:
		return WindowAll
	}
}

// Bucket accumulates the result and occurrence count for one category value.
type Bucket struct {
	Result float64 `json:"result"`
	Count  int     `json:"count"`
}

// Point is one step of the cumulative result series.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Report is the full set of derived statistics for one window.
type Report struct {
	Window      Window  `json:"window"`
	TotalTrades int     `json:"total_trades"`
	Wins        int     `json:"wins"`
	WinRate     float64 `json:"win_rate"` // percentage, 0 when no trades
	NetResult   float64 `json:"net_result"`
	TotalPoints float64 `json:"total_points"`
	TotalLots   int     `json:"total_lots"`

	ByTrigger map[string]Bucket `json:"by_trigger"`
	ByRegion  map[string]Bucket `json:"by_region"`
	BySide    map[string]Bucket `json:"by_side"`

	Cumulative []Point `json:"cumulative"`
}

// InsufficientData reports whether the cumulative series is too short to
// plot or to say anything about the trend.
func (r *Report) InsufficientData() bool {
	return len(r.Cumulative) < 2
}

// Aggregate reduces records matching the window into a Report. now anchors
// the relative windows and is truncated to the current UTC date.
func Aggregate(records []models.TradeRecord, w Window, now time.Time) Report {
	report := Report{
		Window:    w,
		ByTrigger: make(map[string]Bucket),
		ByRegion:  make(map[string]Bucket),
		// The side breakdown always carries both buckets, matched or not.
		BySide: map[string]Bucket{
			models.SideBuy:  {},
			models.SideSell: {},
		},
	}

	today := utcMidnight(now)
	matched := make([]models.TradeRecord, 0, len(records))
	for _, rec := range records {
		if !matchesWindow(&rec, w, today) {
			continue
		}
		matched = append(matched, rec)

		report.TotalTrades++
		if rec.Status == models.StatusGain {
			report.Wins++
		}
		report.NetResult += rec.Result
		report.TotalPoints += rec.Points
		report.TotalLots += rec.Quantity

		// Break-even trades carry no signal for the category breakdowns.
		if rec.Status == models.StatusBreakEven {
			continue
		}
		if rec.Trigger != "" {
			accumulate(report.ByTrigger, rec.Trigger, rec.Result)
		}
		if rec.Region != "" {
			accumulate(report.ByRegion, rec.Region, rec.Result)
		}
		accumulate(report.BySide, rec.Side, rec.Result)
	}

	if report.TotalTrades > 0 {
		report.WinRate = float64(report.Wins) / float64(report.TotalTrades) * 100
	}

	// Cumulative series ordered by date, then display sequence. The
	// canonical date shape sorts lexicographically.
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date < matched[j].Date
		}
		return matched[i].Seq < matched[j].Seq
	})
	running := 0.0
	report.Cumulative = make([]Point, 0, len(matched))
	for _, rec := range matched {
		running += rec.Result
		report.Cumulative = append(report.Cumulative, Point{Date: rec.Date, Value: running})
	}

	return report
}

func accumulate(m map[string]Bucket, key string, result float64) {
	b := m[key]
	b.Result += result
	b.Count++
	m[key] = b
}

func matchesWindow(rec *models.TradeRecord, w Window, today time.Time) bool {
	if w == WindowAll {
		return true
	}
	date, ok := rec.DateValue()
	if !ok {
		return false
	}
	switch w {
	case WindowToday:
		return date.Equal(today)
	case WindowWeek:
		// Most recent Sunday, inclusive, up to and including today.
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		return !date.Before(weekStart) && !date.After(today)
	case WindowMonth:
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return !date.Before(monthStart)
	}
	return false
}

func utcMidnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
