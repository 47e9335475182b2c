// Package textnorm canonicalizes free text into ASCII keys used for matching
// and code generation. All functions are pure and tolerate empty input.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	reNonMatching = regexp.MustCompile(`[^a-z0-9]`)
	reNonCode     = regexp.MustCompile(`[^A-Za-z0-9]`)
	reNonDigit    = regexp.MustCompile(`\D`)
)

// FoldDiacritics replaces accented letters with their unaccented base form,
// preserving case. Runes not in the table pass through unchanged.
func FoldDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if base, ok := diacritics[r]; ok {
			b.WriteString(base)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ForMatching derives the lowercase matching key: diacritics folded, then
// everything outside [a-z0-9] stripped. Idempotent.
func ForMatching(s string) string {
	return reNonMatching.ReplaceAllString(strings.ToLower(FoldDiacritics(s)), "")
}

// ForCode derives the uppercase code key: diacritics folded, everything
// outside [A-Za-z0-9] stripped, then uppercased. Idempotent.
func ForCode(s string) string {
	return strings.ToUpper(reNonCode.ReplaceAllString(FoldDiacritics(s), ""))
}

// PhoneKey reduces a phone number to its last 9 digits for comparison.
// Shorter numbers keep all their digits.
func PhoneKey(s string) string {
	digits := reNonDigit.ReplaceAllString(s, "")
	if len(digits) > 9 {
		return digits[len(digits)-9:]
	}
	return digits
}
