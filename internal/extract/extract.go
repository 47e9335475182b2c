// Package extract parses free-text customer/address blobs into structured
// records using an ordered chain of independent regex rules. Malformed input
// never fails: missing fields stay empty.
package extract

import (
	"regexp"
	"strings"

	"recordlink/internal"
)

var (
	rePhone       = regexp.MustCompile(`(?i)(?:tel[:\s]*|phone[:\s]*|dt[:\s]*)?(\+?[\d\s\-]{8,20})`)
	rePhoneJunk   = regexp.MustCompile(`[\s\-]`)
	reEmail       = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	reZip         = regexp.MustCompile(`\b(\d{4,5})\b`)
	reStreet      = regexp.MustCompile(`([\p{L}\s\-.]+)\s+(\d+[a-zA-Z]?(?:[-/]\d+)?)`)
	reCitySegment = `\s+([\p{L}\s\-]+)`
)

type Extractor struct {
	defaultCountry string
}

// NewExtractor builds a field extractor. defaultCountry is applied when no
// country keyword matches but a street or city was found; pass "" to disable
// the fallback. The observed datasets are predominantly German, so callers
// normally pass "Germany".
func NewExtractor(defaultCountry string) *Extractor {
	return &Extractor{defaultCountry: defaultCountry}
}

// Parse runs the rule chain over raw. Each rule does its own pass over the
// original text; earlier rules never consume input from later ones.
func (e *Extractor) Parse(raw string) internal.ParsedRecord {
	rec := internal.ParsedRecord{}
	text := strings.TrimSpace(raw)
	if text == "" {
		return rec
	}

	if m := rePhone.FindStringSubmatch(text); m != nil {
		rec.Phone = rePhoneJunk.ReplaceAllString(m[1], "")
	}

	if m := reEmail.FindString(text); m != "" {
		rec.Email = m
	}

	if m := reZip.FindStringSubmatch(text); m != nil {
		rec.ZipCode = m[1]
	}

	if m := reStreet.FindStringSubmatch(text); m != nil {
		rec.Street = strings.TrimSpace(m[1])
		rec.StreetNumber = strings.TrimSpace(m[2])
	}

	e.extractNameOrCompany(text, &rec)

	// City only makes sense relative to a found postal code.
	if rec.ZipCode != "" {
		reCity := regexp.MustCompile(regexp.QuoteMeta(rec.ZipCode) + reCitySegment)
		if m := reCity.FindStringSubmatch(text); m != nil {
			city := strings.TrimSpace(m[1])
			if i := strings.Index(city, ";"); i >= 0 {
				city = strings.TrimSpace(city[:i])
			}
			rec.City = city
		}
	}

	lower := strings.ToLower(text)
outer:
	for _, c := range countryKeywords {
		for _, kw := range c.Keywords {
			if hasCountryKeyword(lower, kw) {
				rec.Country = c.Name
				break outer
			}
		}
	}
	if rec.Country == "" && e.defaultCountry != "" && (rec.Street != "" || rec.City != "") {
		rec.Country = e.defaultCountry
	}

	return rec
}

// extractNameOrCompany inspects the first ';'-separated part. A part carrying
// a business keyword becomes the company, and the person's name is searched
// in the following parts. Name words follow the regional convention observed
// throughout the datasets: the first word is the family name, the rest the
// given name. This ordering is a deliberate policy, not a bug.
func (e *Extractor) extractNameOrCompany(text string, rec *internal.ParsedRecord) {
	parts := splitParts(text)
	if len(parts) == 0 {
		return
	}

	first := parts[0]
	if containsAny(strings.ToLower(first), companyKeywords) {
		rec.Company = first
		for _, part := range parts[1:] {
			words := strings.Fields(part)
			if len(words) >= 2 && len(words) <= 4 && !containsAny(strings.ToLower(part), companyKeywords) {
				rec.LastName = words[0]
				rec.FirstName = strings.Join(words[1:], " ")
				break
			}
		}
		return
	}

	words := strings.Fields(first)
	if len(words) >= 2 && len(words) <= 4 {
		rec.LastName = words[0]
		rec.FirstName = strings.Join(words[1:], " ")
	}
}

func splitParts(text string) []string {
	raw := strings.Split(text, ";")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
