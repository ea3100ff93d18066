// Package taxid validates Turkish taxpayer identifiers: the 10-digit VKN
// (vergi kimlik numarası) assigned to organizations and the 11-digit TCKN
// (T.C. kimlik numarası) of individuals. Both carry trailing check digits
// derived from the preceding digits; validation is a pure checksum test and
// performs no registry lookup.
package taxid

import (
	"strings"
)

// Kind classifies an identifier by its checksum scheme
type Kind string

const (
	KindVKN     Kind = "VKN"
	KindTCKN    Kind = "TCKN"
	KindUnknown Kind = "UNKNOWN"
)

// Result is the outcome of a checksum validation. Err is empty when Valid.
type Result struct {
	Valid bool   `json:"valid"`
	Err   string `json:"error,omitempty"`
}

func invalid(msg string) Result {
	return Result{Valid: false, Err: msg}
}

// clean strips all whitespace so formatted input like "123 456 78 90" passes
func clean(id string) string {
	return strings.Join(strings.Fields(id), "")
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateVKN checks a 10-digit organization tax number against the GIB
// check-digit algorithm. Each of the first nine digits is shifted by its
// position modulo 10, weighted by a power of two and reduced modulo 9; the
// tenth digit must equal the complement of the running sum.
func ValidateVKN(id string) Result {
	s := clean(id)
	if len(s) != 10 {
		return invalid("VKN 10 haneli olmalıdır")
	}
	if !allDigits(s) {
		return invalid("VKN yalnızca rakamlardan oluşmalıdır")
	}

	sum := 0
	for i := 0; i < 9; i++ {
		digit := int(s[i] - '0')
		t := (digit + 10 - (i + 1)) % 10
		if t == 9 {
			sum += 9
			continue
		}
		// 2^(9-i) weight, folded into mod 9
		sum += (t * pow2(9-i)) % 9
	}
	check := (10 - sum%10) % 10
	if check != int(s[9]-'0') {
		return invalid("VKN kontrol hanesi geçersiz")
	}
	return Result{Valid: true}
}

func pow2(n int) int {
	return 1 << n
}

// ValidateTCKN checks an 11-digit citizen identification number. The first
// digit must be nonzero; digit 10 is derived from the odd- and even-position
// digit sums and digit 11 from the total of the first ten digits.
func ValidateTCKN(id string) Result {
	s := clean(id)
	if len(s) != 11 {
		return invalid("TCKN 11 haneli olmalıdır")
	}
	if !allDigits(s) {
		return invalid("TCKN yalnızca rakamlardan oluşmalıdır")
	}
	if s[0] == '0' {
		return invalid("TCKN sıfır ile başlayamaz")
	}

	var oddSum, evenSum int
	for i := 0; i < 9; i += 2 {
		oddSum += int(s[i] - '0') // digits 1,3,5,7,9
	}
	for i := 1; i < 8; i += 2 {
		evenSum += int(s[i] - '0') // digits 2,4,6,8
	}

	d10 := mod10(oddSum*7 - evenSum)
	if d10 != int(s[9]-'0') {
		return invalid("TCKN 10. kontrol hanesi geçersiz")
	}

	d11 := (oddSum + evenSum + d10) % 10
	if d11 != int(s[10]-'0') {
		return invalid("TCKN 11. kontrol hanesi geçersiz")
	}
	return Result{Valid: true}
}

// mod10 is a non-negative modulo; oddSum*7 - evenSum can dip below zero
func mod10(v int) int {
	return ((v % 10) + 10) % 10
}

// Classify dispatches on the cleaned length: 10 digits are validated as a
// VKN, 11 as a TCKN, anything else is rejected without a checksum run.
func Classify(id string) (Kind, Result) {
	s := clean(id)
	switch len(s) {
	case 10:
		return KindVKN, ValidateVKN(s)
	case 11:
		return KindTCKN, ValidateTCKN(s)
	default:
		return KindUnknown, invalid("kimlik numarası 10 veya 11 haneli olmalıdır")
	}
}
