package format

import (
	"fmt"
	"math"
	"strings"
)

// Money returns a cost string with a currency symbol and thousands separators (e.g., "-¥1,234.56").
func Money(amount float64) string {
	formatted := groupThousands(math.Abs(amount), 2)
	if amount < 0 {
		return "-¥" + formatted
	}
	return "¥" + formatted
}

// Mass returns a mass string in kg with thousands separators and one decimal (e.g., "1,234.5").
func Mass(kg float64) string {
	sign := ""
	if kg < 0 {
		sign = "-"
	}
	return sign + groupThousands(math.Abs(kg), 1)
}

func groupThousands(value float64, decimals int) string {
	formatted := fmt.Sprintf("%.*f", decimals, value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := ""
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if decPart == "" {
		return intPart
	}
	return intPart + "." + decPart
}
