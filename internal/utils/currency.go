package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP renders an amount in Colombian pesos for display,
// e.g. 20000 becomes "$ 20.000".
func FormatCOP(amount int64) string {
	return copPrinter.Sprintf("$ %v", number.Decimal(amount))
}
