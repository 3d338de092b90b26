package money

import (
	"fmt"
	"strings"
)

// FormatPrice renders an amount in USD for display, e.g. 1234.5 -> "$1,234.50".
func FormatPrice(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(formatted, ".", 2)
	whole, frac := parts[0], parts[1]

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}

	return fmt.Sprintf("%s$%s.%s", sign, b.String(), frac)
}
