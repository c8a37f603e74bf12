package inventory

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatBRL renders an amount in cents as Brazilian currency, e.g. "R$ 145.000,00".
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	p := message.NewPrinter(language.BrazilianPortuguese)
	return sign + "R$ " + p.Sprintf("%v", number.Decimal(float64(cents)/100, number.Scale(2)))
}

// PlainAmount renders cents as a dot-decimal number without grouping, the
// form spreadsheet imports read back as a number ("145000.50", "145000").
func PlainAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	if cents%100 == 0 {
		return sign + strconv.FormatInt(cents/100, 10)
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
