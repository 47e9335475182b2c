package pipeline

import (
	"crypto/md5"
	"encoding/csv"
	"encoding/hex"
	"os"
	"strings"

	"recordlink/internal"
	"recordlink/internal/config"
	"recordlink/internal/extract"
	"recordlink/internal/storage"
	"recordlink/internal/textnorm"
)

// skipPatterns mark address cells that carry no usable address data.
var skipPatterns = []string{
	"no address in db",
	"pickup",
	"no address",
	"n/a",
}

type CustomerStats struct {
	Total     int
	Skipped   int
	CacheHits int
	Parsed    int
}

// CustomerProcessor turns a raw User-ID/address export into import-ready
// customer rows. Parsed addresses are cached by content hash so re-runs of
// large exports skip re-parsing; pass a nil db to disable the cache.
type CustomerProcessor struct {
	cfg       config.Config
	db        *storage.DB
	extractor *extract.Extractor
}

func NewCustomerProcessor(cfg config.Config, db *storage.DB) *CustomerProcessor {
	return &CustomerProcessor{
		cfg:       cfg,
		db:        db,
		extractor: extract.NewExtractor(cfg.DefaultCountry),
	}
}

// ProcessFile reads a two-column (User ID, Address) TSV and produces one
// export row per input line.
func (p *CustomerProcessor) ProcessFile(path string) ([]internal.CustomerExportRow, CustomerStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CustomerStats{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiterFor(path)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, CustomerStats{}, err
	}

	stats := CustomerStats{}
	rows := make([]internal.CustomerExportRow, 0, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		userID := strings.TrimSpace(record[0])
		rawAddress := strings.TrimSpace(record[1])
		if userID == "" || strings.EqualFold(userID, "user id") {
			continue
		}

		stats.Total++
		row, hit, skipped := p.processOne(userID, rawAddress)
		if hit {
			stats.CacheHits++
		}
		if skipped {
			stats.Skipped++
		} else {
			stats.Parsed++
		}
		rows = append(rows, row)
	}

	return rows, stats, nil
}

func (p *CustomerProcessor) processOne(userID, rawAddress string) (row internal.CustomerExportRow, cacheHit, skipped bool) {
	facebookID := FacebookID(userID)

	row = internal.CustomerExportRow{
		FacebookID:        facebookID,
		FacebookURL:       facebookURL(facebookID),
		Address:           rawAddress,
		Type:              "regular",
		PreferredLanguage: "vi",
		PreferredCurrency: "EUR",
	}

	if ShouldSkipAddress(rawAddress) {
		first, last := extract.ExtractName(rawAddress)
		row.Name = strings.TrimSpace(first + " " + last)
		if row.Name == "" {
			row.Name = facebookID
		}
		row.Notes = "No valid address"
		return row, false, true
	}

	parsed, cacheHit := p.parseWithCache(rawAddress)

	first, last := parsed.FirstName, parsed.LastName
	if first == "" && last == "" {
		first, last = extract.ExtractName(rawAddress)
	}
	row.Name = strings.TrimSpace(first + " " + last)
	if row.Name == "" {
		row.Name = facebookID
	}

	row.Email = parsed.Email
	row.Phone = parsed.Phone
	if parsed.Street != "" {
		row.Address = strings.TrimSpace(parsed.Street + " " + parsed.StreetNumber)
	}
	row.City = parsed.City
	row.ZipCode = parsed.ZipCode
	row.Country = parsed.Country

	row.BillingFirstName = first
	row.BillingLastName = last
	row.BillingCompany = parsed.Company
	row.BillingEmail = parsed.Email
	row.BillingPhone = parsed.Phone
	row.BillingStreet = parsed.Street
	row.BillingStreetNumber = parsed.StreetNumber
	row.BillingCity = parsed.City
	row.BillingZipCode = parsed.ZipCode
	row.BillingCountry = parsed.Country

	return row, cacheHit, false
}

func (p *CustomerProcessor) parseWithCache(rawAddress string) (internal.ParsedRecord, bool) {
	if p.db == nil || !p.cfg.ParseCacheEnabled {
		return p.extractor.Parse(rawAddress), false
	}

	hash := AddressHash(rawAddress)
	if cached, err := p.db.GetCachedParse(hash); err == nil && cached != nil {
		return *cached, true
	}

	parsed := p.extractor.Parse(rawAddress)
	_ = p.db.PutCachedParse(hash, parsed)
	return parsed, false
}

// FacebookID converts the export's user id to a Facebook id; the export
// encodes dots as the degree sign.
func FacebookID(userID string) string {
	return strings.ReplaceAll(userID, "°", ".")
}

func facebookURL(facebookID string) string {
	if facebookID == "" || strings.HasPrefix(facebookID, "http") {
		return ""
	}
	return "https://facebook.com/" + facebookID
}

// ShouldSkipAddress reports whether the cell carries no real address data.
func ShouldSkipAddress(address string) bool {
	trimmed := strings.TrimSpace(address)
	if len([]rune(trimmed)) < 5 {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, pattern := range skipPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// AddressHash is the parse-cache key: md5 of the diacritic-folded, lowercased
// address, truncated to 16 hex chars.
func AddressHash(address string) string {
	normalized := textnorm.FoldDiacritics(strings.ToLower(strings.TrimSpace(address)))
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])[:16]
}
