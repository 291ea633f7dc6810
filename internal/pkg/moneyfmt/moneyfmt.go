// Package moneyfmt parses and renders the human-facing number format used on
// calculator forms and reports: spaces as thousands separators, comma or dot
// as the decimal mark on input, dot with two fixed decimals on output.
package moneyfmt

import (
	"fmt"
	"mortgage-engine/internal/pkg/apperrors"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse reads a user-supplied amount. Spaces are treated as grouping
// separators and removed wherever they appear, a single decimal comma is
// accepted in place of a dot.
func Parse(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: value is empty", apperrors.ErrParse)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a valid number", apperrors.ErrParse, strings.TrimSpace(s))
	}
	return d, nil
}

// Format renders an amount with two decimals and space-grouped thousands,
// e.g. 1234567.8 -> "1 234 567.80".
func Format(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	grouped := groupThousands(intPart)
	if negative {
		return "-" + grouped + "." + fracPart
	}
	return grouped + "." + fracPart
}

// FormatPercent renders a percentage with two decimals and no grouping.
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + n/3)

	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
