package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var amountReplacer = strings.NewReplacer(
	",", "",
	"$", "",
	" ", "",
	"\u00a0", "",
	"\t", "",
)

// ParseAmount converts a cell value to a decimal. Thousands separators,
// currency signs and whitespace are stripped and accounting negatives such
// as "(1,234)" become -1234. An empty cell yields a null decimal.
func ParseAmount(s string) (decimal.NullDecimal, error) {
	cleaned := amountReplacer.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.NullDecimal{}, nil
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("not a number: %q", s)
	}
	if negative {
		d = d.Neg()
	}
	return decimal.NewNullDecimal(d), nil
}
