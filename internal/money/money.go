// Package money wraps shopspring/decimal with the rounding rules used by the
// GIB for TRY amounts: round-half-up to 2 fractional digits (kuruş), applied
// after every arithmetic step rather than only on the final result.
package money

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// Tolerance is the default reconciliation tolerance: 1 kuruş.
var Tolerance = decimal.New(1, -2)

// FromInt creates a decimal from an integer lira amount
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromFloat creates a decimal from a float, rounded to kuruş
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FromString parses a decimal from its string form
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Round rounds to kuruş, half away from zero. This is the single rounding
// primitive every calculation step goes through.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Mul multiplies two decimals and rounds to kuruş
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(2)
}

// Div divides a by b and rounds to kuruş; division by zero yields zero
func Div(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return Zero
	}
	return a.Div(b).Round(2)
}

// Rate converts a percentage (18 -> 0.18) without rounding; the caller rounds
// after the multiplication that consumes it.
func Rate(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(decimal.NewFromInt(100))
}

// Sum adds a slice of decimals. The sum itself is exact; callers round once
// after the full sum per the regulator's totalling rule.
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// WithinTolerance reports whether a and b differ by no more than tol
func WithinTolerance(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tol)
}

// IsNonNegative returns true if d >= 0
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}
