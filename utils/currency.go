package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders amount as US dollars, e.g. "$4,500,000.00".
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return "-$" + usdPrinter.Sprintf("%.2f", math.Abs(amount))
	}
	return "$" + usdPrinter.Sprintf("%.2f", amount)
}
