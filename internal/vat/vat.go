// Package vat computes KDV (value-added tax) breakdowns and reconciles
// declared invoice totals against recomputed ones.
//
// Rounding follows the GIB's observed behaviour: every intermediate value is
// rounded to kuruş before it feeds the next step. This differs from rounding
// only the final result at the 1-kuruş level for some rate/amount
// combinations and must not be "simplified" to a single final round.
package vat

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rezonia/gib-compliance/internal/money"
)

// Breakdown is the tax base / tax amount / total triple for a transaction.
// TotalAmount = TaxBase + TaxAmount within the kuruş tolerance.
type Breakdown struct {
	TaxBase     decimal.Decimal `json:"tax_base"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Compute derives the KDV breakdown for an amount. With vatIncluded the
// amount is treated as gross and the base is extracted from it; otherwise
// the amount is the base and tax is added on top.
//
// A negative amount or rate is a caller contract violation and panics.
func Compute(amount, ratePercent decimal.Decimal, vatIncluded bool) Breakdown {
	if amount.IsNegative() {
		panic(fmt.Sprintf("vat: negative amount %s", amount.String()))
	}
	if ratePercent.IsNegative() {
		panic(fmt.Sprintf("vat: negative rate %s", ratePercent.String()))
	}

	if vatIncluded {
		divisor := decimal.NewFromInt(1).Add(money.Rate(ratePercent))
		base := money.Div(amount, divisor)
		tax := money.Round(amount.Sub(base))
		return Breakdown{TaxBase: base, TaxAmount: tax, TotalAmount: money.Round(amount)}
	}

	base := money.Round(amount)
	tax := money.Mul(base, money.Rate(ratePercent))
	total := money.Round(base.Add(tax))
	return Breakdown{TaxBase: base, TaxAmount: tax, TotalAmount: total}
}

// LineItem is one invoice line as supplied by the document assembly layer.
type LineItem struct {
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	VATRate   decimal.Decimal `json:"vat_rate"`
}

// TotalsInput carries the declared totals to reconcile. Tolerance zero means
// the default of 1 kuruş.
type TotalsInput struct {
	Lines            []LineItem      `json:"lines"`
	DeclaredSubtotal decimal.Decimal `json:"declared_subtotal"`
	DeclaredVAT      decimal.Decimal `json:"declared_vat"`
	DeclaredTotal    decimal.Decimal `json:"declared_total"`
	Tolerance        decimal.Decimal `json:"tolerance,omitempty"`
}

// TotalsResult reports the recomputed values and one error per field whose
// declared value drifts beyond tolerance.
type TotalsResult struct {
	Valid            bool            `json:"valid"`
	ComputedSubtotal decimal.Decimal `json:"computed_subtotal"`
	ComputedVAT      decimal.Decimal `json:"computed_vat"`
	ComputedTotal    decimal.Decimal `json:"computed_total"`
	Errors           []string        `json:"errors,omitempty"`
}

// ValidateTotals recomputes subtotal and KDV from the line items and checks
// the three declared figures. Line values are summed exactly and each sum is
// rounded once at the end, matching how the regulator totals a document.
func ValidateTotals(in TotalsInput) TotalsResult {
	tol := in.Tolerance
	if tol.IsZero() {
		tol = money.Tolerance
	}

	subtotal := money.Zero
	vatTotal := money.Zero
	for _, line := range in.Lines {
		lineTotal := line.Quantity.Mul(line.UnitPrice)
		subtotal = subtotal.Add(lineTotal)
		vatTotal = vatTotal.Add(lineTotal.Mul(money.Rate(line.VATRate)))
	}
	subtotal = money.Round(subtotal)
	vatTotal = money.Round(vatTotal)
	total := money.Round(subtotal.Add(vatTotal))

	result := TotalsResult{
		ComputedSubtotal: subtotal,
		ComputedVAT:      vatTotal,
		ComputedTotal:    total,
	}

	check := func(field string, declared, computed decimal.Decimal) {
		if !money.WithinTolerance(declared, computed, tol) {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"%s uyuşmazlığı: beyan edilen %s, hesaplanan %s",
				field, declared.StringFixed(2), computed.StringFixed(2)))
		}
	}
	check("ara toplam", in.DeclaredSubtotal, subtotal)
	check("KDV", in.DeclaredVAT, vatTotal)
	check("genel toplam", in.DeclaredTotal, total)

	result.Valid = len(result.Errors) == 0
	return result
}
