// Package money formats COP amounts for display and print. Both the detail
// view and the PDF go through FormatCOP so the two can never disagree.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Colombian pesos carry no fraction digits in display.
var printer = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP renders an amount as locale-formatted Colombian pesos,
// e.g. 110000 -> "$ 110.000". Fractions are rounded away.
func FormatCOP(v decimal.Decimal) string {
	f, _ := v.Round(0).Float64()
	return printer.Sprintf("$ %v", number.Decimal(f,
		number.MaxFractionDigits(0),
		number.MinFractionDigits(0),
	))
}

// FormatPercent renders a tax-rate percentage without trailing zeros,
// e.g. 19.00 -> "19".
func FormatPercent(rate decimal.Decimal) string {
	s := rate.Truncate(2).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
