package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// familyNameRoots are common family-name roots in the customer base, accented
// and unaccented spellings both.
const familyNameRoots = `Nguyen|Tran|Le|Pham|Hoang|Vu|Vo|Dang|Bui|Do|Ho|Ngo|Duong|Ly|` +
	`Nguyễn|Trần|Lê|Phạm|Hoàng|Vũ|Võ|Đặng|Bùi|Đỗ|Hồ|Ngô|Dương|Lý|` +
	`Huynh|Huỳnh|Phan|Truong|Trương|Dinh|Đinh|Luu|Lưu|Mai|Dao|Đào|` +
	`Ta|Tạ|Trinh|Trịnh|Quach|Quách|Cao|La|Lã|Khong|Không|Khuu|Khưu`

var (
	reFamilyName  = regexp.MustCompile(`(?i)^((?:` + familyNameRoots + `))\s+(.+)$`)
	reGenericName = regexp.MustCompile(`^(\p{Lu}\p{Ll}+)\s+(\p{Lu}\p{Ll}+)(?:\s+\p{Lu}\p{Ll}+)?$`)
	reParen       = regexp.MustCompile(`\(([^)]+)\)`)
)

// ExtractName does a best-effort scan for a person's name inside free text,
// used as a fallback when the structured parse yields none. Returns
// (firstName, lastName); the first word of a name is the family name.
func ExtractName(raw string) (string, string) {
	if strings.TrimSpace(raw) == "" {
		return "", ""
	}

	parts := splitParts(raw)
	for _, part := range parts {
		lower := strings.ToLower(part)
		if containsAny(lower, skipPhrases) {
			continue
		}
		if containsAny(lower, shopKeywords) {
			continue
		}
		if containsAny(lower, addressKeywords) {
			continue
		}
		if mostlyDigits(part) {
			continue
		}
		words := strings.Fields(part)
		if len(words) < 2 || len(words) > 5 {
			continue
		}

		if m := reFamilyName.FindStringSubmatch(part); m != nil {
			return m[2], m[1]
		}
		if m := reGenericName.FindStringSubmatch(part); m != nil {
			return m[2], m[1]
		}
		if len(words) <= 4 {
			if first := words[0]; utf8.RuneCountInString(first) >= 2 && startsUpper(first) {
				return strings.Join(words[1:], " "), first
			}
		}
	}

	// Retry inside parentheses: "Shop Name (Person Name)".
	for _, part := range parts {
		m := reParen.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		inner := strings.TrimSpace(m[1])
		words := strings.Fields(inner)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		lower := strings.ToLower(inner)
		if containsAny(lower, shopKeywords) || containsAny(lower, addressKeywords) {
			continue
		}
		return strings.Join(words[1:], " "), words[0]
	}

	return "", ""
}

// mostlyDigits reports whether more than 30% of the runes are digits, which
// marks the part as a phone number or house address rather than a name.
func mostlyDigits(s string) bool {
	digits := 0
	total := 0
	for _, r := range s {
		total++
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return total > 0 && float64(digits) > float64(total)*0.3
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
