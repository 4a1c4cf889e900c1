package models

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a whole-dollar USD amount: 150000 -> "$150,000".
// Fractions round half away from zero.
func FormatCurrency(amount float64) string {
	dollars := int64(math.Round(amount))
	if dollars < 0 {
		return "-$" + usPrinter.Sprintf("%d", -dollars)
	}
	return "$" + usPrinter.Sprintf("%d", dollars)
}

// FormatNumber renders a whole number with US digit grouping: 4900 -> "4,900".
func FormatNumber(value float64) string {
	return usPrinter.Sprintf("%d", int64(math.Round(value)))
}

// AverageWeeklyHours spreads total hours over a 365-day year.
func AverageWeeklyHours(totalHours float64) int {
	return int(math.Round(totalHours / 365 * DaysPerWeek))
}
