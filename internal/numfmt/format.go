package numfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatCurrency renders a monetary value in BRL. The currency is always
// BRL regardless of the display locale; only grouping and the decimal
// separator follow the language tag.
func FormatCurrency(lang language.Tag, v float64) string {
	p := message.NewPrinter(lang)
	return p.Sprintf("R$ %v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatNumber renders a plain number with the given fraction digits,
// using the locale's separators.
func FormatNumber(lang language.Tag, v float64, decimals int) string {
	p := message.NewPrinter(lang)
	return p.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// FormatPercent renders a ratio already scaled to 0..100 with one
// fraction digit and a trailing percent sign.
func FormatPercent(lang language.Tag, v float64) string {
	p := message.NewPrinter(lang)
	return p.Sprintf("%v%%", number.Decimal(v,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))
}
