// Package money formats rupee amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Rupees renders amount with the rupee sign and Indian digit grouping.
func Rupees(amount int) string {
	if amount < 0 {
		return printer.Sprintf("-₹%d", -amount)
	}
	return printer.Sprintf("₹%d", amount)
}

// Signed is Rupees with an explicit plus sign for gains.
func Signed(amount int) string {
	if amount > 0 {
		return "+" + Rupees(amount)
	}
	return Rupees(amount)
}
