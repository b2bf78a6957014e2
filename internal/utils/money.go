package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD formats a decimal amount as a string like "$1,234.56".
// Always renders two fractional digits (cents).
func FormatUSD(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	if neg {
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart := fixed[:len(fixed)-3]
	centPart := fixed[len(fixed)-2:]

	var b strings.Builder
	// Pre-allocate: digits + separators + "$" + ".cc"
	b.Grow(len(fixed) + len(intPart)/3 + 2)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}

	b.WriteByte('.')
	b.WriteString(centPart)

	return b.String()
}
