package addressbook

import (
	"strings"

	"recordlink/internal"
)

// csvCountryCodes maps the two-letter country codes used by the CSV export.
var csvCountryCodes = map[string]string{
	"CZ": "Czech Republic",
	"DE": "Germany",
	"AT": "Austria",
	"SK": "Slovakia",
	"PL": "Poland",
	"DK": "Denmark",
	"BE": "Belgium",
}

// ParseCSV parses the semicolon-separated CSV address book. The export is a
// naive dump without quoting, so plain splitting matches its producer.
func ParseCSV(content string) []internal.AddressEntry {
	lines := splitLines(content)
	if len(lines) == 0 {
		return nil
	}

	headers := strings.Split(lines[0], ";")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	out := make([]internal.AddressEntry, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, ";")
		row := map[string]string{}
		for i, h := range headers {
			if i < len(values) {
				row[h] = strings.TrimSpace(values[i])
			}
		}

		entry := internal.AddressEntry{
			Source:  internal.SourceCSV,
			Company: row["NAZEV"],
			Street:  row["ULICE_CP"],
			City:    row["MESTO"],
			ZipCode: row["PSC"],
			Country: row["ZEME"],
			Email:   row["EMAIL"],
			Contact: row["KONTAKTNI_OS"],
			Phone:   row["TELEFON"],
		}
		if entry.Country == "" {
			entry.Country = "CZ"
		}
		if full, ok := csvCountryCodes[strings.ToUpper(entry.Country)]; ok {
			entry.Country = full
		}

		if entry.Street != "" || entry.Company != "" {
			out = append(out, entry)
		}
	}

	return out
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
