package ubltr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/gib-compliance/internal/ubltr"
)

const completeInvoice = `<?xml version="1.0" encoding="UTF-8"?>
<Invoice xmlns="urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
         xmlns:cac="urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
         xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">
  <cbc:ID>GIB2026000000001</cbc:ID>
  <cbc:IssueDate>2026-03-15</cbc:IssueDate>
  <cac:AccountingSupplierParty/>
  <cac:AccountingCustomerParty/>
  <cac:TaxTotal>
    <cbc:TaxAmount currencyID="TRY">18.00</cbc:TaxAmount>
  </cac:TaxTotal>
  <cac:LegalMonetaryTotal>
    <cbc:PayableAmount currencyID="TRY">118.00</cbc:PayableAmount>
  </cac:LegalMonetaryTotal>
</Invoice>`

func TestValidateStructure_Complete(t *testing.T) {
	result := ubltr.ValidateStructure(completeInvoice)

	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidateStructure_EmptyDocument(t *testing.T) {
	result := ubltr.ValidateStructure("")

	assert.False(t, result.Valid)
	// Every marker must be reported in a single pass
	assert.Len(t, result.Errors, 10)
}

func TestValidateStructure_MissingElements(t *testing.T) {
	tests := []struct {
		name    string
		removed string
		errPart string
	}{
		{"no issue date", "cbc:IssueDate", "IssueDate"},
		{"no supplier", "cac:AccountingSupplierParty", "AccountingSupplierParty"},
		{"no customer", "cac:AccountingCustomerParty", "AccountingCustomerParty"},
		{"no tax total", "cac:TaxTotal", "TaxTotal"},
		{"no monetary total", "cac:LegalMonetaryTotal", "LegalMonetaryTotal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.ReplaceAll(completeInvoice, tt.removed, "removed")
			result := ubltr.ValidateStructure(doc)

			assert.False(t, result.Valid)
			found := false
			for _, e := range result.Errors {
				if strings.Contains(e, tt.errPart) {
					found = true
				}
			}
			assert.True(t, found, "expected an error naming %s, got %v", tt.errPart, result.Errors)
		})
	}
}

func TestValidateStructure_MissingNamespace(t *testing.T) {
	doc := strings.ReplaceAll(completeInvoice,
		"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2", "urn:other")
	result := ubltr.ValidateStructure(doc)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "CommonBasicComponents-2")
}
