package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field edits arrive as raw strings from the form layer. Coercion is
// silent: anything that fails a whole-string numeric parse becomes zero,
// so "3.5abc" -> 0 and a cleared input contributes nothing.

func CoerceInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func CoerceDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}
