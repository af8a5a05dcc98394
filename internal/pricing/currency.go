package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Суммы отображаются в рупиях с индийской группировкой разрядов
// (1,00,000 а не 100,000), поэтому используется локаль en-IN.
var enIN = message.NewPrinter(language.MustParse("en-IN"))

const currencySymbol = "₹"

// FormatCurrency renders a compact amount: grouped digits, up to two decimals,
// trailing zeros dropped (e.g. "₹1,240" or "₹40.5").
func FormatCurrency(amount float64) string {
	return currencySymbol + enIN.Sprintf("%v", number.Decimal(amount,
		number.MaxFractionDigits(2),
	))
}

// FormatCurrencyDetailed renders a receipt amount with exactly two decimals
// (e.g. "₹100.30").
func FormatCurrencyDetailed(amount float64) string {
	return currencySymbol + enIN.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
