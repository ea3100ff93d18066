// Package ubltr performs a structural completeness check over a serialized
// UBL-TR invoice document. This is a cheap substring-presence pass over the
// markers and namespaces the GIB rejects documents without, not schema
// validation; callers needing strict conformance must validate against the
// UBL-TR 1.2 XSD separately.
package ubltr

import (
	"strings"
)

// UBL 2.1 namespaces required by the UBL-TR profile.
const (
	NamespaceInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NamespaceCAC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NamespaceCBC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// requiredMarkers lists each mandatory element or namespace together with
// the error emitted when it is missing. Order matches the element order in
// a conforming document, which keeps error lists readable.
var requiredMarkers = []struct {
	marker string
	errMsg string
}{
	{"<Invoice", "fatura kök elemanı (Invoice) eksik"},
	{"cbc:ID", "fatura numarası elemanı (cbc:ID) eksik"},
	{"cbc:IssueDate", "düzenleme tarihi elemanı (cbc:IssueDate) eksik"},
	{"cac:AccountingSupplierParty", "satıcı taraf elemanı (cac:AccountingSupplierParty) eksik"},
	{"cac:AccountingCustomerParty", "alıcı taraf elemanı (cac:AccountingCustomerParty) eksik"},
	{"cac:TaxTotal", "vergi toplamı elemanı (cac:TaxTotal) eksik"},
	{"cac:LegalMonetaryTotal", "parasal toplam elemanı (cac:LegalMonetaryTotal) eksik"},
	{NamespaceInvoice, "Invoice-2 isim alanı bildirimi eksik"},
	{NamespaceCAC, "CommonAggregateComponents-2 isim alanı bildirimi eksik"},
	{NamespaceCBC, "CommonBasicComponents-2 isim alanı bildirimi eksik"},
}

// StructureResult lists every missing marker found in one pass.
type StructureResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateStructure checks the serialized document for the required UBL-TR
// elements and namespace declarations. All missing markers are collected,
// not just the first.
func ValidateStructure(doc string) StructureResult {
	var errs []string
	for _, m := range requiredMarkers {
		if !strings.Contains(doc, m.marker) {
			errs = append(errs, m.errMsg)
		}
	}
	return StructureResult{Valid: len(errs) == 0, Errors: errs}
}
