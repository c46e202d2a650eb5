package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrencyEUR formats an amount the way the menu displays it:
// dotted thousands, decimal comma, trailing euro sign.
// Example: 1234.5 -> "1.234,50 €"
func FormatCurrencyEUR(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	parts := strings.Split(fixed, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	formatted := strings.Join(groups, ".") + "," + decimalPart + " €"
	if negative {
		return "-" + formatted
	}
	return formatted
}
