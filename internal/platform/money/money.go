package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP formatea pesos colombianos sin decimales: 30000 -> "$ 30.000".
func FormatCOP(amount int64) string {
	if amount < 0 {
		return "-$ " + printer.Sprintf("%d", -amount)
	}
	return "$ " + printer.Sprintf("%d", amount)
}
