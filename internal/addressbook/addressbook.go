// Package addressbook parses external address-book exports into address
// entries ready for matching. Three formats occur in practice: a
// semicolon-separated CSV export, a pasted plain-text dump of the supplier's
// web address book, and the HTML page the dump comes from.
package addressbook

import (
	"fmt"
	"os"
	"strings"

	"recordlink/internal"
)

// businessKeywords decide whether the leading line of an entry names the shop
// or the contact person.
var businessKeywords = []string{"nails", "beauty", "studio", "salon", "center", "shop", "lounge", "spa"}

// ReadFile parses path according to format ("csv", "german" or "html").
func ReadFile(path, format string) ([]internal.AddressEntry, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case "csv":
		return ParseCSV(string(blob)), nil
	case "german":
		return ParseGermanTXT(string(blob)), nil
	case "html":
		return ParseHTML(strings.NewReader(string(blob)))
	default:
		return nil, fmt.Errorf("unsupported address book format: %s", format)
	}
}

func isBusinessName(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range businessKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
