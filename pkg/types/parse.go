package types

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimalOr parses value as a decimal, returning fallback when it is blank or malformed.
func ParseDecimalOr(value string, fallback decimal.Decimal) decimal.Decimal {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return fallback
	}
	return d
}

// ParseIntOr parses a base-10 integer, returning fallback when it is blank or malformed.
// Fractional input such as "1.5" is malformed.
func ParseIntOr(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
