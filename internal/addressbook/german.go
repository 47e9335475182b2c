package addressbook

import (
	"regexp"
	"strings"

	"recordlink/internal"
)

var (
	// Entries in the pasted web export are separated by the UI's edit/delete
	// button labels.
	reEntrySplit = regexp.MustCompile(`\nBearbeiten\s*\n+Löschen\s*\n?`)
	reZipCity    = regexp.MustCompile(`^(\d{4,5})\s+(.+?),\s*(\w{2})$`)
)

var germanCountryCodes = map[string]string{
	"DE": "Germany",
	"AT": "Austria",
	"NL": "Netherlands",
	"DK": "Denmark",
	"CH": "Switzerland",
	"BE": "Belgium",
	"FR": "France",
}

// ParseGermanTXT parses the pasted plain-text dump of the German web address
// book. Each entry is a block of lines: shop and/or contact, street, then a
// "ZIP City, CC" line, with an optional email line anywhere.
func ParseGermanTXT(content string) []internal.AddressEntry {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	blocks := reEntrySplit.Split(content, -1)

	out := make([]internal.AddressEntry, 0, len(blocks))
	for _, block := range blocks {
		var lines []string
		for _, l := range strings.Split(strings.TrimSpace(block), "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) < 3 {
			continue
		}

		entry := internal.AddressEntry{
			Source:  internal.SourceGermanTXT,
			Country: "Germany",
		}

		for _, line := range lines {
			if strings.Contains(line, "@") {
				entry.Email = line
				break
			}
		}

		zipIdx := -1
		for i, line := range lines {
			if m := reZipCity.FindStringSubmatch(line); m != nil {
				entry.ZipCode = m[1]
				entry.City = m[2]
				code := strings.ToUpper(m[3])
				if full, ok := germanCountryCodes[code]; ok {
					entry.Country = full
				} else {
					entry.Country = m[3]
				}
				zipIdx = i
				break
			}
		}
		if zipIdx < 1 {
			continue
		}

		entry.Street = lines[zipIdx-1]

		remaining := lines[:zipIdx-1]
		if len(remaining) > 0 {
			first := remaining[0]
			if isBusinessName(first) {
				entry.Company = first
				if len(remaining) > 1 && !strings.HasPrefix(remaining[1], "(") {
					entry.Contact = remaining[1]
				}
			} else {
				entry.Contact = first
				if len(remaining) > 1 {
					entry.Company = remaining[1]
				}
			}
		}

		if entry.Street != "" && entry.ZipCode != "" {
			out = append(out, entry)
		}
	}

	return out
}
