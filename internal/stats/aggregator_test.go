package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trade-journal-go/internal/models"
)

// now is a Wednesday; the most recent Sunday is 2025-07-13.
var now = time.Date(2025, 7, 16, 15, 4, 5, 0, time.UTC)

func record(seq int, date string, result float64) models.TradeRecord {
	rec := models.TradeRecord{
		ID:       int64(seq),
		Seq:      seq,
		Asset:    "WINQ25",
		Side:     models.SideBuy,
		Date:     date,
		Quantity: 1,
		Result:   result,
		Status:   models.StatusForResult(result),
	}
	return rec
}

func TestAggregateEmpty(t *testing.T) {
	report := Aggregate(nil, WindowAll, now)

	assert.Equal(t, 0, report.TotalTrades)
	assert.Equal(t, 0.0, report.WinRate, "win rate over an empty set is 0, never NaN")
	assert.True(t, report.InsufficientData())
	assert.Len(t, report.BySide, 2, "side breakdown always carries both buckets")
}

func TestAggregateSummary(t *testing.T) {
	records := []models.TradeRecord{
		record(1, "2025-07-14", 100),
		record(2, "2025-07-15", -40),
		record(3, "2025-07-16", 60),
		record(4, "2025-07-16", 0),
	}

	report := Aggregate(records, WindowAll, now)

	assert.Equal(t, 4, report.TotalTrades)
	assert.Equal(t, 2, report.Wins)
	assert.InDelta(t, 50.0, report.WinRate, 1e-9)
	assert.InDelta(t, 120.0, report.NetResult, 1e-9)
	assert.Equal(t, 4, report.TotalLots)
}

func TestAggregateWindows(t *testing.T) {
	records := []models.TradeRecord{
		record(1, "2025-07-12", 10), // prior Saturday
		record(2, "2025-07-13", 20), // most recent Sunday
		record(3, "2025-07-16", 30), // today
		record(4, "2025-06-30", 40), // previous month
		record(5, "2025-07-01", 50), // first of month
	}

	testCases := []struct {
		name     string
		window   Window
		expected int
	}{
		{"All time", WindowAll, 5},
		{"Today", WindowToday, 1},
		{"Week includes Sunday, excludes prior Saturday", WindowWeek, 2},
		{"Month from the first", WindowMonth, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report := Aggregate(records, tc.window, now)
			assert.Equal(t, tc.expected, report.TotalTrades)
		})
	}
}

func TestAggregateBreakdowns(t *testing.T) {
	a := record(1, "2025-07-14", 100)
	a.Trigger = "Pullback"
	a.Region = "Suporte"
	b := record(2, "2025-07-15", -40)
	b.Trigger = "Pullback"
	b.Region = "Topo"
	b.Side = models.SideSell
	c := record(3, "2025-07-15", 0) // break-even carries no breakdown signal
	c.Trigger = "Pullback"
	c.Region = "Suporte"

	report := Aggregate([]models.TradeRecord{a, b, c}, WindowAll, now)

	assert.Equal(t, Bucket{Result: 60, Count: 2}, report.ByTrigger["Pullback"])
	assert.Equal(t, Bucket{Result: 100, Count: 1}, report.ByRegion["Suporte"])
	assert.Equal(t, Bucket{Result: -40, Count: 1}, report.ByRegion["Topo"])

	assert.Len(t, report.BySide, 2)
	assert.Equal(t, Bucket{Result: 100, Count: 1}, report.BySide[models.SideBuy])
	assert.Equal(t, Bucket{Result: -40, Count: 1}, report.BySide[models.SideSell])
}

func TestAggregateSideBucketsPresentWhenOneSided(t *testing.T) {
	records := []models.TradeRecord{record(1, "2025-07-14", 100)}
	report := Aggregate(records, WindowAll, now)

	assert.Len(t, report.BySide, 2)
	assert.Equal(t, Bucket{}, report.BySide[models.SideSell])
}

func TestAggregateCumulativeSeries(t *testing.T) {
	records := []models.TradeRecord{
		// Deliberately unordered: series must sort by date, then seq.
		record(3, "2025-07-16", 60),
		record(1, "2025-07-14", 100),
		record(2, "2025-07-15", -40),
	}

	report := Aggregate(records, WindowAll, now)

	assert.False(t, report.InsufficientData())
	values := make([]float64, 0, len(report.Cumulative))
	for _, p := range report.Cumulative {
		values = append(values, p.Value)
	}
	assert.Equal(t, []float64{100, 60, 120}, values)
	assert.Equal(t, "2025-07-14", report.Cumulative[0].Date)
}

func TestAggregateCumulativeInsufficient(t *testing.T) {
	report := Aggregate([]models.TradeRecord{record(1, "2025-07-14", 100)}, WindowAll, now)
	assert.True(t, report.InsufficientData())
}

func TestParseWindow(t *testing.T) {
	assert.Equal(t, WindowToday, ParseWindow("today"))
	assert.Equal(t, WindowAll, ParseWindow("bogus"))
	assert.Equal(t, WindowAll, ParseWindow(""))
}
