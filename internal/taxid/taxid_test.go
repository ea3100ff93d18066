package taxid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/gib-compliance/internal/taxid"
)

func TestValidateVKN_Valid(t *testing.T) {
	valid := []string{
		"1234567890",
		"1111111114",
		"9876543217",
		"0012345672",
		"8648522681",
	}
	for _, id := range valid {
		t.Run(id, func(t *testing.T) {
			result := taxid.ValidateVKN(id)
			assert.True(t, result.Valid, "expected %s to be valid: %s", id, result.Err)
			assert.Empty(t, result.Err)
		})
	}
}

func TestValidateVKN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"wrong check digit", "1234567891"},
		{"too short", "123456789"},
		{"too long", "12345678901a"},
		{"letters", "12345678AB"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := taxid.ValidateVKN(tt.id)
			assert.False(t, result.Valid)
			assert.NotEmpty(t, result.Err)
		})
	}
}

func TestValidateVKN_StripsWhitespace(t *testing.T) {
	result := taxid.ValidateVKN(" 123 456 78 90 ")
	assert.True(t, result.Valid, "formatted VKN should validate: %s", result.Err)
}

func TestValidateVKN_MutationFlipsChecksum(t *testing.T) {
	const id = "8648522681"
	flipped := 0
	total := 0
	for pos := 0; pos < len(id); pos++ {
		for d := byte('0'); d <= '9'; d++ {
			if id[pos] == d {
				continue
			}
			mutated := id[:pos] + string(d) + id[pos+1:]
			total++
			if !taxid.ValidateVKN(mutated).Valid {
				flipped++
			}
		}
	}
	// Single-digit transcription errors must be caught at 9/10 or better
	assert.GreaterOrEqual(t, float64(flipped)/float64(total), 0.9,
		"caught %d of %d single-digit mutations", flipped, total)
}

func TestValidateTCKN_Valid(t *testing.T) {
	valid := []string{
		"10000000146", // canonical GIB test number
		"12345678950",
		"98765432150",
		"10234567828",
	}
	for _, id := range valid {
		t.Run(id, func(t *testing.T) {
			result := taxid.ValidateTCKN(id)
			assert.True(t, result.Valid, "expected %s to be valid: %s", id, result.Err)
		})
	}
}

func TestValidateTCKN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"leading zero", "01234567895"},
		{"wrong first check digit", "10000000156"},
		{"wrong second check digit", "10000000147"},
		{"too short", "1000000014"},
		{"non-digit", "1000000014x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := taxid.ValidateTCKN(tt.id)
			assert.False(t, result.Valid)
			assert.NotEmpty(t, result.Err)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		kind  taxid.Kind
		valid bool
	}{
		{"valid VKN", "1234567890", taxid.KindVKN, true},
		{"invalid VKN", "1234567899", taxid.KindVKN, false},
		{"valid TCKN", "10000000146", taxid.KindTCKN, true},
		{"invalid TCKN", "10000000145", taxid.KindTCKN, false},
		{"bad length", "12345", taxid.KindUnknown, false},
		{"empty", "", taxid.KindUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, result := taxid.Classify(tt.id)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.valid, result.Valid, result.Err)
		})
	}
}

func TestClassify_WhitespaceOnly(t *testing.T) {
	kind, result := taxid.Classify("   ")
	require.Equal(t, taxid.KindUnknown, kind)
	assert.False(t, result.Valid)
}
