package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatCurrencyAlwaysBRL(t *testing.T) {
	en := FormatCurrency(language.AmericanEnglish, 1234.5)
	pt := FormatCurrency(language.BrazilianPortuguese, 1234.5)

	// Currency symbol is fixed, separators follow the locale.
	assert.Contains(t, en, "R$")
	assert.Contains(t, pt, "R$")
	assert.Contains(t, en, "1,234.50")
	assert.Contains(t, pt, "1.234,50")
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "62.5%", FormatPercent(language.AmericanEnglish, 62.5))
	assert.Equal(t, "62,5%", FormatPercent(language.BrazilianPortuguese, 62.5))
}
