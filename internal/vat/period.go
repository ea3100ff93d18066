package vat

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// archiveThreshold is the e-Arşiv mandatory-issuance threshold for sales to
// non-registered individuals, in TRY.
var archiveThreshold = decimal.NewFromInt(5000)

// ArchiveThreshold returns the fixed e-Arşiv reporting threshold.
func ArchiveThreshold() decimal.Decimal {
	return archiveThreshold
}

// ExceedsArchiveThreshold reports whether a gross amount triggers the
// mandatory e-Arşiv issuance obligation.
func ExceedsArchiveThreshold(amount decimal.Decimal) bool {
	return amount.GreaterThan(archiveThreshold)
}

// Granularity selects the declaration period shape.
type Granularity string

const (
	Monthly   Granularity = "monthly"
	Quarterly Granularity = "quarterly"
	Yearly    Granularity = "yearly"
)

// FormatPeriod renders a declaration period identifier: "2026-03" for a
// month, "2026-Q1" for a quarter, "2026" for a year. sub is the month
// (1-12) or quarter (1-4) and is ignored for yearly periods. Out-of-range
// input is a contract violation and panics.
func FormatPeriod(year, sub int, g Granularity) string {
	switch g {
	case Monthly:
		if sub < 1 || sub > 12 {
			panic(fmt.Sprintf("vat: month out of range: %d", sub))
		}
		return fmt.Sprintf("%04d-%02d", year, sub)
	case Quarterly:
		if sub < 1 || sub > 4 {
			panic(fmt.Sprintf("vat: quarter out of range: %d", sub))
		}
		return fmt.Sprintf("%04d-Q%d", year, sub)
	case Yearly:
		return fmt.Sprintf("%04d", year)
	default:
		panic(fmt.Sprintf("vat: unknown period granularity %q", g))
	}
}
