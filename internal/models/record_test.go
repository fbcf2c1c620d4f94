package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecompute(t *testing.T) {
	testCases := []struct {
		name           string
		record         TradeRecord
		expectedPoints float64
		expectedResult float64
		expectedStatus string
	}{
		{
			name:           "Winning buy",
			record:         TradeRecord{Side: SideBuy, EntryPrice: 100, ExitPrice: 110, Quantity: 2, PointValue: 0.5},
			expectedPoints: 10,
			expectedResult: 10,
			expectedStatus: StatusGain,
		},
		{
			name:           "Losing buy",
			record:         TradeRecord{Side: SideBuy, EntryPrice: 110, ExitPrice: 100, Quantity: 1, PointValue: 1},
			expectedPoints: -10,
			expectedResult: -10,
			expectedStatus: StatusLoss,
		},
		{
			name:           "Winning sell is direction-adjusted",
			record:         TradeRecord{Side: SideSell, EntryPrice: 110, ExitPrice: 100, Quantity: 3, PointValue: 2},
			expectedPoints: 10,
			expectedResult: 60,
			expectedStatus: StatusGain,
		},
		{
			name:           "Losing sell",
			record:         TradeRecord{Side: SideSell, EntryPrice: 100, ExitPrice: 110, Quantity: 1, PointValue: 1},
			expectedPoints: -10,
			expectedResult: -10,
			expectedStatus: StatusLoss,
		},
		{
			name:           "Break-even",
			record:         TradeRecord{Side: SideBuy, EntryPrice: 100, ExitPrice: 100, Quantity: 5, PointValue: 10},
			expectedPoints: 0,
			expectedResult: 0,
			expectedStatus: StatusBreakEven,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.record.Recompute()
			assert.InDelta(t, tc.expectedPoints, tc.record.Points, 1e-9)
			assert.InDelta(t, tc.expectedResult, tc.record.Result, 1e-9)
			assert.Equal(t, tc.expectedStatus, tc.record.Status)
		})
	}
}

func TestStatusMatchesResultSign(t *testing.T) {
	assert.Equal(t, StatusGain, StatusForResult(0.01))
	assert.Equal(t, StatusLoss, StatusForResult(-0.01))
	assert.Equal(t, StatusBreakEven, StatusForResult(0))
}

func TestParseSide(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"BUY", SideBuy},
		{"buy", SideBuy},
		{"Compra", SideBuy},
		{"SELL", SideSell},
		{"sell", SideSell},
		{"Venda", SideSell},
		{"v", SideSell},
		{"", SideBuy},        // absent defaults to Buy
		{"nonsense", SideBuy}, // invalid defaults to Buy
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ParseSide(tc.input), "input %q", tc.input)
	}
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"GAIN", StatusGain},
		{"Ganho", StatusGain},
		{"LOSS", StatusLoss},
		{"perda", StatusLoss},
		{"BREAK_EVEN", StatusBreakEven},
		{"", StatusBreakEven},
		{"whatever", StatusBreakEven},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ParseStatus(tc.input), "input %q", tc.input)
	}
}

func TestDateValue(t *testing.T) {
	rec := TradeRecord{Date: "2025-07-13"}
	d, ok := rec.DateValue()
	assert.True(t, ok)
	assert.Equal(t, "2025-07-13 00:00:00 +0000 UTC", d.String())

	rec.Date = "13/07/2025"
	_, ok = rec.DateValue()
	assert.False(t, ok)
}
