package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"recordlink/internal"
)

// ReadCustomersXLSX loads customers from an exported workbook. The first row
// is the header; column meaning is matched by lowercased header name.
func ReadCustomersXLSX(path string) ([]internal.Customer, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	out := make([]internal.Customer, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(name string) string {
			for i, h := range headers {
				if h == name && i < len(row) {
					return strings.TrimSpace(row[i])
				}
			}
			return ""
		}

		c := internal.Customer{
			Name:       cell("name"),
			FacebookID: cell("facebook id"),
			Email:      cell("email"),
			Phone:      cell("phone"),
			Address:    cell("address"),
			City:       cell("city"),
			ZipCode:    cell("zip code"),
			Country:    cell("country"),
			Notes:      cell("notes"),
		}
		if c.Name != "" {
			out = append(out, c)
		}
	}

	return out, nil
}

// readDelimited reads a CSV or TSV file (delimiter by extension) into
// header-keyed rows.
func readDelimited(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiterFor(path)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	out := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := map[string]string{}
		for i, h := range headers {
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func delimiterFor(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt":
		return '\t'
	default:
		return ','
	}
}
