// Package money is the single rounding and formatting boundary for the
// calculation engine. Intermediate math stays unrounded; every monetary
// value is rounded exactly once, at the point it enters a result.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// Round4 rounds values that feed other calculators and result totals.
func Round4(value float64) float64 {
	return math.Round(value*10000) / 10000
}

// Round2 rounds display-final figures (withholding tax values).
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// Prorate returns the month-linear share of an annual-equivalent value.
// Non-positive arguments yield zero. The result is intentionally not
// rounded; rounding happens where the value enters a result.
func Prorate(annualEquivalent float64, months int) float64 {
	if annualEquivalent <= 0 || months <= 0 {
		return 0
	}
	return annualEquivalent / 12 * float64(months)
}

// FormatBRL renders a value as Brazilian currency, e.g. "R$ 1.518,00",
// for computation-trail narratives.
func FormatBRL(value float64) string {
	return brl.Sprintf("R$ %.2f", value)
}
