// Package txid generates the regulator-facing identifiers attached to
// outbound documents: the ETTN (a random 128-bit transaction identifier),
// human-readable e-Arşiv series numbers, and QR verification payloads that
// embed a truncated SHA-256 digest over the identifying fields so a printed
// copy can be checked against the portal without the full document.
package txid

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VerificationBaseURL is the portal endpoint QR payloads point at.
const VerificationBaseURL = "https://earsivportal.efatura.gov.tr/earsiv-services/dogrula"

// digestPrefixLen is the number of hex characters of the SHA-256 digest
// carried in a QR payload.
const digestPrefixLen = 16

var ettnPattern = regexp.MustCompile(`^[A-Fa-f0-9]{32}$`)

// NewETTN returns a fresh transaction identifier: a version-4 random UUID
// rendered as 32 uppercase hex characters with no dashes. This is the only
// operation in the engine that consumes entropy.
func NewETTN() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:]))
}

// IsValidETTN reports whether s is a well-formed transaction identifier.
// Case-insensitive; the portal accepts either case.
func IsValidETTN(s string) bool {
	return ettnPattern.MatchString(s)
}

// SeriesNumber builds a human-readable invoice number: a 3-letter series
// prefix, the 4-digit issue year and a serial zero-padded to 9 digits,
// e.g. "GIB2026000000042". Short prefixes are right-padded with 'X',
// long ones truncated.
func SeriesNumber(prefix string, year, serial int) string {
	p := strings.ToUpper(strings.TrimSpace(prefix))
	if len(p) > 3 {
		p = p[:3]
	}
	for len(p) < 3 {
		p += "X"
	}
	return fmt.Sprintf("%s%04d%09d", p, year, serial)
}

// ArchiveQRParams identifies an e-Arşiv document for verification.
type ArchiveQRParams struct {
	ETTN      string
	TaxID     string
	IssueDate time.Time
	Amount    decimal.Decimal
}

// InvoiceQRParams identifies an e-Fatura document for verification.
type InvoiceQRParams struct {
	ETTN          string
	SenderTaxID   string
	ReceiverTaxID string
	IssueDate     time.Time
}

// ArchiveQRPayload builds the verification URL printed as a QR code on
// e-Arşiv documents. The hash parameter is the first 16 hex characters of a
// SHA-256 digest over ETTN, tax ID, RFC 3339 issue date and the amount with
// exactly two decimals; any edit to those fields invalidates the code.
func ArchiveQRPayload(p ArchiveQRParams) string {
	digest := fieldDigest(p.ETTN, p.TaxID, p.IssueDate.Format(time.RFC3339), p.Amount.StringFixed(2))
	return verificationURL(p.ETTN, digest)
}

// InvoiceQRPayload builds the e-Fatura variant: same digest scheme over
// ETTN, sender and receiver tax IDs and the issue date.
func InvoiceQRPayload(p InvoiceQRParams) string {
	digest := fieldDigest(p.ETTN, p.SenderTaxID, p.ReceiverTaxID, p.IssueDate.Format(time.RFC3339))
	return verificationURL(p.ETTN, digest)
}

func fieldDigest(fields ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(fields, "")))
	return hex.EncodeToString(sum[:])[:digestPrefixLen]
}

func verificationURL(ettn, digest string) string {
	q := url.Values{}
	q.Set("ettn", ettn)
	q.Set("hash", digest)
	return VerificationBaseURL + "?" + q.Encode()
}
