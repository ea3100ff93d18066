package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rezonia/gib-compliance/internal/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidateDoubleEntry_Balanced(t *testing.T) {
	result := ledger.ValidateDoubleEntry([]ledger.Entry{
		{Debit: d("100"), Credit: d("100")},
	})

	assert.True(t, result.Valid)
	assert.True(t, result.TotalDebit.Equal(d("100.00")))
	assert.True(t, result.TotalCredit.Equal(d("100.00")))
	assert.True(t, result.Difference.IsZero())
}

func TestValidateDoubleEntry_Unbalanced(t *testing.T) {
	result := ledger.ValidateDoubleEntry([]ledger.Entry{
		{Debit: d("100"), Credit: d("99")},
	})

	assert.False(t, result.Valid)
	assert.True(t, result.Difference.Equal(d("1")), "got %s", result.Difference)
}

func TestValidateDoubleEntry_OneSidedPostings(t *testing.T) {
	// Typical journal entry: each posting hits only one side
	result := ledger.ValidateDoubleEntry([]ledger.Entry{
		{Debit: d("118.00")},
		{Credit: d("100.00")},
		{Credit: d("18.00")},
	})

	assert.True(t, result.Valid)
	assert.True(t, result.TotalDebit.Equal(d("118.00")))
	assert.True(t, result.TotalCredit.Equal(d("118.00")))
}

func TestValidateDoubleEntry_WithinTolerance(t *testing.T) {
	// 0.005 off: under the 0.01 tolerance after rounding
	result := ledger.ValidateDoubleEntry([]ledger.Entry{
		{Debit: d("100.004"), Credit: d("100.00")},
	})
	assert.True(t, result.Valid, "difference %s should pass", result.Difference)

	// exactly 0.01 off: strict less-than, so this fails
	result = ledger.ValidateDoubleEntry([]ledger.Entry{
		{Debit: d("100.01"), Credit: d("100.00")},
	})
	assert.False(t, result.Valid)
	assert.True(t, result.Difference.Equal(d("0.01")))
}

func TestValidateDoubleEntry_Empty(t *testing.T) {
	result := ledger.ValidateDoubleEntry(nil)

	assert.True(t, result.Valid)
	assert.True(t, result.TotalDebit.IsZero())
	assert.True(t, result.TotalCredit.IsZero())
}

func TestValidateDoubleEntry_ManyPostings(t *testing.T) {
	entries := make([]ledger.Entry, 0, 200)
	for i := 0; i < 100; i++ {
		entries = append(entries,
			ledger.Entry{Debit: d("10.01")},
			ledger.Entry{Credit: d("10.01")},
		)
	}
	result := ledger.ValidateDoubleEntry(entries)

	assert.True(t, result.Valid)
	assert.True(t, result.TotalDebit.Equal(d("1001.00")))
}
