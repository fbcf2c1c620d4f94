package models

import (
	"regexp"
	"strings"
	"time"
)

const (
	SideBuy  = "BUY"
	SideSell = "SELL"

	StatusGain      = "GAIN"
	StatusLoss      = "LOSS"
	StatusBreakEven = "BREAK_EVEN"

	// DateLayout is the canonical calendar-date shape used everywhere.
	DateLayout = "2006-01-02"
)

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// TradeRecord represents one logged trading operation.
//
// Points, Result and Status are derived fields: they are recomputed from the
// prices, quantity and point value on every create and update, never set
// independently.
type TradeRecord struct {
	ID       int64  `json:"id"`
	Seq      int    `json:"seq"` // 1-based display sequence, contiguous
	Asset    string `json:"asset"`
	Side     string `json:"side"` // SideBuy or SideSell
	Date     string `json:"date"` // calendar date, DateLayout shape
	Quantity int    `json:"quantity"`

	EntryPrice float64 `json:"entry_price"`
	ExitPrice  float64 `json:"exit_price"`
	PointValue float64 `json:"point_value"` // monetary value of one point

	Points float64 `json:"points"`
	Result float64 `json:"result"`
	Status string  `json:"status"`

	// REG classification tags.
	Region    string `json:"region"`
	Structure string `json:"structure"`
	Trigger   string `json:"trigger"`
}

// Recompute rederives Points, Result and Status from the raw fields.
func (r *TradeRecord) Recompute() {
	if r.Side == SideSell {
		r.Points = r.EntryPrice - r.ExitPrice
	} else {
		r.Points = r.ExitPrice - r.EntryPrice
	}
	r.Result = r.Points * float64(r.Quantity) * r.PointValue
	r.Status = StatusForResult(r.Result)
}

// DateValue parses the record date as UTC midnight.
// The second return value is false when the date does not have the
// canonical shape.
func (r *TradeRecord) DateValue() (time.Time, bool) {
	if !dateShape.MatchString(r.Date) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, r.Date, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StatusForResult maps a monetary result onto its status.
func StatusForResult(result float64) string {
	switch {
	case result > 0:
		return StatusGain
	case result < 0:
		return StatusLoss
	default:
		return StatusBreakEven
	}
}

// ParseSide normalizes a side spelling (English or Portuguese).
// Anything unrecognized defaults to SideBuy.
func ParseSide(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VENDA", "V", "S", SideSell:
		return SideSell
	default:
		return SideBuy
	}
}

// ParseStatus normalizes a status spelling (English or Portuguese).
// Anything unrecognized defaults to StatusBreakEven.
func ParseStatus(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GANHO", StatusGain:
		return StatusGain
	case "PERDA", "LOS", StatusLoss:
		return StatusLoss
	default:
		return StatusBreakEven
	}
}

// ValidDateShape reports whether s has the canonical YYYY-MM-DD shape.
func ValidDateShape(s string) bool {
	return dateShape.MatchString(s)
}
