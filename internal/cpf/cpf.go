// Package cpf normalizes and validates Brazilian CPF numbers.
package cpf

import (
	"regexp"
	"strings"
)

// formatPattern accepts the two textual shapes a CPF arrives in:
// punctuated (000.000.000-00) or bare 11 digits.
var formatPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$|^\d{11}$`)

// Normalize strips every non-digit character from the input.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchesFormat reports whether the raw input looks like a CPF, before any
// checksum evaluation.
func MatchesFormat(input string) bool {
	return formatPattern.MatchString(input)
}

// IsValid reports whether the digits satisfy the two-pass weighted CPF
// checksum. The input must already be normalized to exactly 11 digits.
func IsValid(digits string) bool {
	if len(digits) != 11 {
		return false
	}

	d := make([]int, 11)
	for i, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
		d[i] = int(r - '0')
	}

	// First check digit: weights 10..2 over d[0..8].
	sum := 0
	for i := 0; i < 9; i++ {
		sum += d[i] * (10 - i)
	}
	if checkDigit(sum) != d[9] {
		return false
	}

	// Second check digit: weights 11..2 over d[0..9].
	sum = 0
	for i := 0; i < 10; i++ {
		sum += d[i] * (11 - i)
	}
	return checkDigit(sum) == d[10]
}

// Format renders 11 digits as 000.000.000-00. Input that is not 11 digits
// long is returned unchanged.
func Format(digits string) string {
	if len(digits) != 11 {
		return digits
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

func checkDigit(sum int) int {
	check := 11 - (sum % 11)
	if check >= 10 {
		return 0
	}
	return check
}
