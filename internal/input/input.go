// Package input turns raw user strings into game and money values.
// Nothing here fails: unparsable text falls back to a fixed default.
package input

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Count parses a non-positional integer such as tokens, points or games played.
// Defaults to 0.
func Count(s string) int {
	return parseInt(s, 0)
}

// Position parses a finishing position or table size. Defaults to 1.
func Position(s string) int {
	return parseInt(s, 1)
}

// Amount parses a money amount. Both "12.50" and "12,50" are accepted.
// Defaults to 0.
func Amount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
