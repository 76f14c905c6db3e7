package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary value with exactly two fraction digits and
// thousands grouping: 1234567.8 -> "1,234,567.80".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]
	for i := len(intPart) - 3; i > 0; i -= 3 {
		intPart = intPart[:i] + "," + intPart[i:]
	}

	if neg {
		return "-" + intPart + fracPart
	}
	return intPart + fracPart
}

// FormatHours renders an hour quantity with two fraction digits.
func FormatHours(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatDate renders the fixed long date form used on invoices
// ("Month DD, YYYY"), independent of locale.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
