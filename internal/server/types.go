package server

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/gib-compliance/internal/ledger"
	"github.com/rezonia/gib-compliance/internal/vat"
)

// TaxIDRequest is the request for the tax identifier endpoint
type TaxIDRequest struct {
	ID string `json:"id" binding:"required"`
}

// TaxIDResponse reports the classification and checksum verdict
type TaxIDResponse struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// VATRequest is the request for the VAT computation endpoint
type VATRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	VATIncluded bool            `json:"vat_included"`
}

// TotalsRequest is the request for the totals reconciliation endpoint
type TotalsRequest = vat.TotalsInput

// LedgerRequest is the request for the double-entry balance endpoint
type LedgerRequest struct {
	Entries []ledger.Entry `json:"entries"`
}

// StructureRequest carries the serialized document to check
type StructureRequest struct {
	Document string `json:"document"`
}

// ETTNResponse is the response for the ETTN generation endpoint
type ETTNResponse struct {
	ETTN string `json:"ettn"`
}

// SeriesRequest is the request for the series number endpoint
type SeriesRequest struct {
	Prefix string `json:"prefix"`
	Year   int    `json:"year" binding:"required"`
	Serial int    `json:"serial" binding:"required"`
}

// SeriesResponse is the response for the series number endpoint
type SeriesResponse struct {
	Number string `json:"number"`
}

// TranslateRequest is the request for the code translation endpoint
type TranslateRequest struct {
	Code   string `json:"code" binding:"required"`
	Locale string `json:"locale"`
}

// StatusRequest is the request for the status mapping endpoint
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
	Kind   string `json:"kind" binding:"required"`
}

// StatusResponse is the response for the status mapping endpoint
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
