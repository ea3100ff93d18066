// Package ledger checks the double-entry balance invariant over a set of
// journal postings before they are committed: total debits must equal total
// credits within the kuruş tolerance.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/gib-compliance/internal/money"
)

// Entry is one journal posting. A zero-value side counts as zero, so
// one-sided postings are valid input.
type Entry struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// BalanceResult carries the verdict together with the figures that produced
// it, so the posting service can log or surface the discrepancy.
type BalanceResult struct {
	Valid       bool            `json:"valid"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Difference  decimal.Decimal `json:"difference"`
}

// ValidateDoubleEntry sums debits and credits independently, rounds each sum
// to kuruş and reports balance when the absolute difference is under 0.01.
func ValidateDoubleEntry(entries []Entry) BalanceResult {
	debit := money.Zero
	credit := money.Zero
	for _, e := range entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	debit = money.Round(debit)
	credit = money.Round(credit)
	diff := debit.Sub(credit).Abs()

	return BalanceResult{
		Valid:       diff.LessThan(money.Tolerance),
		TotalDebit:  debit,
		TotalCredit: credit,
		Difference:  diff,
	}
}
