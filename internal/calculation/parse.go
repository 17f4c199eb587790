package calculation

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// ParseDecimal parses a catalog decimal string. Blank strings are zero; the
// second return value is false only for non-blank, unparsable input.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// decimalOrZero parses s and logs a warning when it is not a number.
func decimalOrZero(log Logger, field, s string) decimal.Decimal {
	d, ok := ParseDecimal(s)
	if !ok {
		log.Warnf("%s: %q is not a number, using 0", field, s)
	}
	return d
}

// percentFactor turns a percentage (16) into a fraction (0.16).
func percentFactor(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}
