package addressbook

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"recordlink/internal"
)

// ParseHTML reads the address book straight from the web export page the
// plain-text dump is usually pasted from. Column meaning is inferred from the
// header row.
func ParseHTML(r io.Reader) ([]internal.AddressEntry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	out := []internal.AddressEntry{}
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return
		}

		headers := []string{}
		rows.First().Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			headers = append(headers, strings.ToLower(strings.TrimSpace(cell.Text())))
		})

		nameIdx := findHeaderIndex(headers, []string{"name", "firma", "kunde"})
		streetIdx := findHeaderIndex(headers, []string{"straße", "strasse", "street", "adresse"})
		zipIdx := findHeaderIndex(headers, []string{"plz", "zip", "postleitzahl"})
		cityIdx := findHeaderIndex(headers, []string{"ort", "stadt", "city"})
		countryIdx := findHeaderIndex(headers, []string{"land", "country"})
		phoneIdx := findHeaderIndex(headers, []string{"telefon", "phone", "tel"})
		emailIdx := findHeaderIndex(headers, []string{"e-mail", "email", "mail"})

		if nameIdx < 0 && streetIdx < 0 {
			return
		}

		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			cells := []string{}
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			if len(cells) == 0 {
				return
			}

			entry := internal.AddressEntry{
				Source:  internal.SourceHTML,
				Street:  pickCell(cells, streetIdx),
				ZipCode: pickCell(cells, zipIdx),
				City:    pickCell(cells, cityIdx),
				Country: pickCell(cells, countryIdx),
				Phone:   pickCell(cells, phoneIdx),
				Email:   pickCell(cells, emailIdx),
			}
			if entry.Country == "" {
				entry.Country = "Germany"
			} else if full, ok := germanCountryCodes[strings.ToUpper(entry.Country)]; ok {
				entry.Country = full
			}

			name := pickCell(cells, nameIdx)
			if isBusinessName(name) {
				entry.Company = name
			} else {
				entry.Contact = name
			}

			if entry.Street != "" || entry.Company != "" || entry.Contact != "" {
				out = append(out, entry)
			}
		})
	})

	return out, nil
}

func findHeaderIndex(headers []string, probes []string) int {
	for i, h := range headers {
		for _, probe := range probes {
			if strings.Contains(h, probe) {
				return i
			}
		}
	}
	return -1
}

func pickCell(cells []string, idx int) string {
	if idx >= 0 && idx < len(cells) {
		return cells[idx]
	}
	return ""
}
