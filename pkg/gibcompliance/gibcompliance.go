// Package gibcompliance provides the public API of the GIB e-invoicing
// compliance engine: taxpayer identifier validation, KDV calculation with
// regulator rounding, transaction identifier and QR payload generation,
// UBL-TR structural checks, double-entry balance validation and response
// code translation.
//
// Every operation is a pure function over its inputs; the only exception is
// NewETTN, which draws from a cryptographically secure random source. All
// functions are safe for concurrent use.
//
// Example usage:
//
//	kind, result := gibcompliance.ClassifyTaxID("1234567890")
//	if !result.Valid {
//	    log.Println(result.Err)
//	}
//	breakdown := gibcompliance.ComputeVAT(amount, rate, false)
//	fmt.Println(breakdown.TotalAmount)
package gibcompliance

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/gib-compliance/internal/i18n"
	"github.com/rezonia/gib-compliance/internal/ledger"
	"github.com/rezonia/gib-compliance/internal/status"
	"github.com/rezonia/gib-compliance/internal/taxid"
	"github.com/rezonia/gib-compliance/internal/txid"
	"github.com/rezonia/gib-compliance/internal/ubltr"
	"github.com/rezonia/gib-compliance/internal/vat"
)

// Re-export core types for public API
type (
	TaxIDKind       = taxid.Kind
	TaxIDResult     = taxid.Result
	VATBreakdown    = vat.Breakdown
	LineItem        = vat.LineItem
	TotalsInput     = vat.TotalsInput
	TotalsResult    = vat.TotalsResult
	Granularity     = vat.Granularity
	LedgerEntry     = ledger.Entry
	BalanceResult   = ledger.BalanceResult
	StructureResult = ubltr.StructureResult
	DocumentKind    = status.DocumentKind
	Locale          = i18n.Locale
	Severity        = i18n.Severity
	Message         = i18n.Message
	ArchiveQRParams = txid.ArchiveQRParams
	InvoiceQRParams = txid.InvoiceQRParams
)

// Re-export identifier kinds
const (
	TaxIDKindVKN     = taxid.KindVKN
	TaxIDKindTCKN    = taxid.KindTCKN
	TaxIDKindUnknown = taxid.KindUnknown
)

// Re-export document kinds
const (
	DocumentKindInvoice = status.KindInvoice
	DocumentKindArchive = status.KindArchive
	DocumentKindLedger  = status.KindLedger
)

// Re-export locales and severities
const (
	LocaleTR = i18n.LocaleTR
	LocaleEN = i18n.LocaleEN

	SeverityError   = i18n.SeverityError
	SeverityWarning = i18n.SeverityWarning
	SeverityInfo    = i18n.SeverityInfo
)

// Re-export period granularities
const (
	Monthly   = vat.Monthly
	Quarterly = vat.Quarterly
	Yearly    = vat.Yearly
)

// ValidateVKN checks a 10-digit organization tax number.
func ValidateVKN(id string) TaxIDResult { return taxid.ValidateVKN(id) }

// ValidateTCKN checks an 11-digit citizen identification number.
func ValidateTCKN(id string) TaxIDResult { return taxid.ValidateTCKN(id) }

// ClassifyTaxID dispatches on length: 10 digits validate as a VKN, 11 as a
// TCKN, anything else is rejected.
func ClassifyTaxID(id string) (TaxIDKind, TaxIDResult) { return taxid.Classify(id) }

// NewETTN returns a fresh 32-character uppercase hex transaction identifier.
func NewETTN() string { return txid.NewETTN() }

// IsValidETTN reports whether s is a well-formed transaction identifier.
func IsValidETTN(s string) bool { return txid.IsValidETTN(s) }

// SeriesNumber builds a human-readable invoice number from a series prefix,
// issue year and serial.
func SeriesNumber(prefix string, year, serial int) string {
	return txid.SeriesNumber(prefix, year, serial)
}

// ArchiveQRPayload builds the e-Arşiv verification QR payload.
func ArchiveQRPayload(p ArchiveQRParams) string { return txid.ArchiveQRPayload(p) }

// InvoiceQRPayload builds the e-Fatura verification QR payload.
func InvoiceQRPayload(p InvoiceQRParams) string { return txid.InvoiceQRPayload(p) }

// ComputeVAT derives the KDV breakdown for an amount, rounding every
// intermediate value to kuruş.
func ComputeVAT(amount, ratePercent decimal.Decimal, vatIncluded bool) VATBreakdown {
	return vat.Compute(amount, ratePercent, vatIncluded)
}

// ValidateTotals reconciles declared invoice totals against recomputed ones.
func ValidateTotals(in TotalsInput) TotalsResult { return vat.ValidateTotals(in) }

// ArchiveThreshold returns the fixed e-Arşiv reporting threshold.
func ArchiveThreshold() decimal.Decimal { return vat.ArchiveThreshold() }

// ExceedsArchiveThreshold reports whether a gross amount triggers the
// mandatory e-Arşiv issuance obligation.
func ExceedsArchiveThreshold(amount decimal.Decimal) bool {
	return vat.ExceedsArchiveThreshold(amount)
}

// FormatPeriod renders a declaration period identifier.
func FormatPeriod(year, sub int, g Granularity) string { return vat.FormatPeriod(year, sub, g) }

// ValidateDoubleEntry checks the debit/credit balance of a journal entry.
func ValidateDoubleEntry(entries []LedgerEntry) BalanceResult {
	return ledger.ValidateDoubleEntry(entries)
}

// ValidateStructure checks a serialized UBL-TR document for required
// elements and namespaces.
func ValidateStructure(doc string) StructureResult { return ubltr.ValidateStructure(doc) }

// MapStatus translates an internal lifecycle state to the regulator's
// vocabulary for the given document kind, passing unknown states through.
func MapStatus(internal string, kind DocumentKind) string {
	return status.MapToRegulator(internal, kind)
}

// ParseLocale normalizes a caller-supplied language tag to a supported
// locale, falling back to Turkish.
func ParseLocale(s string) Locale { return i18n.ParseLocale(s) }

// Translate looks up a GIB response code in the given locale.
func Translate(code string, loc Locale) Message { return i18n.Translate(code, loc) }
