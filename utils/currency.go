package utils

import (
	"fmt"
	"strings"
)

// FormatCurrencySEK formats a float64 value as a Swedish krona string.
// Example: 15000.50 -> "15 000,50 kr"
func FormatCurrencySEK(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	// Pisahkan bagian desimal
	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := false
	if strings.HasPrefix(integerPart, "-") {
		negative = true
		integerPart = integerPart[1:]
	}

	// Tambahkan pemisah ribuan
	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	joined := strings.Join(result, " ") + "," + decimalPart
	if negative {
		joined = "-" + joined
	}
	return joined + " kr"
}
