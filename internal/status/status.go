// Package status maps the internal document lifecycle states to the status
// vocabularies the GIB uses in its responses. Each document kind has its own
// closed vocabulary; an internal state with no mapping passes through
// unchanged so a new internal state never breaks an outbound submission.
package status

// DocumentKind selects which vocabulary a mapping uses.
type DocumentKind string

const (
	KindInvoice DocumentKind = "invoice" // e-Fatura
	KindArchive DocumentKind = "archive" // e-Arşiv
	KindLedger  DocumentKind = "ledger"  // e-Defter
)

// Internal lifecycle states for e-Fatura submissions.
const (
	InvoiceDraft     = "DRAFT"
	InvoiceQueued    = "QUEUED"
	InvoiceSubmitted = "SUBMITTED"
	InvoiceAccepted  = "ACCEPTED"
	InvoiceRejected  = "REJECTED"
	InvoiceCancelled = "CANCELLED"
)

// Internal lifecycle states for e-Arşiv documents.
const (
	ArchiveCreated  = "CREATED"
	ArchiveSigned   = "SIGNED"
	ArchiveReported = "REPORTED"
	ArchiveVoided   = "VOIDED"
)

// Internal lifecycle states for e-Defter postings.
const (
	LedgerOpen      = "OPEN"
	LedgerClosed    = "CLOSED"
	LedgerBerated   = "BERATED"
	LedgerConfirmed = "CONFIRMED"
)

var invoiceVocabulary = map[string]string{
	InvoiceDraft:     "TASLAK",
	InvoiceQueued:    "KUYRUGA_EKLENDI",
	InvoiceSubmitted: "GIB_ISLENIYOR",
	InvoiceAccepted:  "BASARIYLA_TAMAMLANDI",
	InvoiceRejected:  "RED_EDILDI",
	InvoiceCancelled: "IPTAL_EDILDI",
}

var archiveVocabulary = map[string]string{
	ArchiveCreated:  "OLUSTURULDU",
	ArchiveSigned:   "IMZALANDI",
	ArchiveReported: "RAPORLANDI",
	ArchiveVoided:   "IPTAL_EDILDI",
}

var ledgerVocabulary = map[string]string{
	LedgerOpen:      "ACIK",
	LedgerClosed:    "KAPANDI",
	LedgerBerated:   "BERAT_YUKLENDI",
	LedgerConfirmed: "GIB_ONAYLI",
}

// MapToRegulator translates an internal state to the regulator's vocabulary
// for the given document kind. Unmapped states (and unknown kinds) return
// the input unchanged: fail-open passthrough, never an error.
func MapToRegulator(internal string, kind DocumentKind) string {
	var vocab map[string]string
	switch kind {
	case KindInvoice:
		vocab = invoiceVocabulary
	case KindArchive:
		vocab = archiveVocabulary
	case KindLedger:
		vocab = ledgerVocabulary
	default:
		return internal
	}
	if mapped, ok := vocab[internal]; ok {
		return mapped
	}
	return internal
}
