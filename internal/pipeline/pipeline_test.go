package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"recordlink/internal/config"
)

func TestShouldSkipAddress(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{input: "", want: true},
		{input: "abc", want: true},
		{input: "Pickup", want: true},
		{input: "no address in DB", want: true},
		{input: "N/A", want: true},
		{input: "Hauptstrasse 12, 60313 Frankfurt", want: false},
	}

	for _, tc := range cases {
		if got := ShouldSkipAddress(tc.input); got != tc.want {
			t.Errorf("ShouldSkipAddress(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestAddressHash(t *testing.T) {
	a := AddressHash("Phở Ngọc, Hauptstrasse 12")
	b := AddressHash("  pho ngoc, hauptstrasse 12 ")
	if a != b {
		t.Fatalf("accent/case variants hash differently: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("hash length = %d, want 16", len(a))
	}
	if a == AddressHash("something else entirely") {
		t.Fatal("distinct addresses collided")
	}
}

func TestFacebookID(t *testing.T) {
	if got := FacebookID("john°doe°123"); got != "john.doe.123" {
		t.Fatalf("got %q", got)
	}
	if got := FacebookID("plain"); got != "plain" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanPrice(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{input: "250", want: 250},
		{input: "9.90", want: 9.9},
		{input: "1,234.50", want: 1234.5},
		{input: "", want: 0},
		{input: "#N/A", want: 0},
		{input: "Loading...", want: 0},
		{input: "not a number", want: 0},
	}

	for _, tc := range cases {
		if got := cleanPrice(tc.input); got != tc.want {
			t.Errorf("cleanPrice(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestDelimiterFor(t *testing.T) {
	if delimiterFor("export.tsv") != '\t' || delimiterFor("export.txt") != '\t' {
		t.Fatal("tsv/txt should be tab-delimited")
	}
	if delimiterFor("export.csv") != ',' {
		t.Fatal("csv should be comma-delimited")
	}
}

func TestSupplierMapLookups(t *testing.T) {
	m := NewSupplierMap()
	m.put("sku:GP-SOGEPO", "Alpha Trade", "2024-01-01")
	m.put("sorahgelpolish", "Beauty Depot", "2024-01-02")
	m.put("nailfilebufferx1", "Gamma Tools", "2024-01-03")

	cases := []struct {
		name  string
		query string
		code  string
		want  string
	}{
		{name: "sku exact", query: "whatever", code: "gp-sogepo", want: "Alpha Trade"},
		{name: "normalized name exact", query: "SORAH Gel Polish", want: "Beauty Depot"},
		{name: "substring", query: "SORAH Gel Polish 15ml", want: "Beauty Depot"},
		{name: "shared 15-char prefix", query: "Nail File Buffer X2", want: "Gamma Tools"},
		{name: "miss", query: "Unrelated Product", want: ""},
		{name: "empty", query: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.FindSupplier(tc.query, tc.code); got != tc.want {
				t.Fatalf("FindSupplier(%q, %q) = %q, want %q", tc.query, tc.code, got, tc.want)
			}
		})
	}
}

func TestSupplierMapNewestWins(t *testing.T) {
	m := NewSupplierMap()
	m.put("sorahgelpolish", "Old Supplier", "2023-06-01")
	m.put("sorahgelpolish", "New Supplier", "2024-01-15")
	m.put("sorahgelpolish", "Stale Supplier", "2022-12-31")

	if got := m.FindSupplier("SORAH Gel Polish", ""); got != "New Supplier" {
		t.Fatalf("got %q, want New Supplier", got)
	}
	if len(m.keys) != 1 {
		t.Fatalf("duplicate keys recorded: %v", m.keys)
	}
}

func TestProcessInventory(t *testing.T) {
	dir := t.TempDir()

	productsPath := filepath.Join(dir, "products.csv")
	products := "Name,Category,SKU,Price CZK,Price EUR,Import cost EUR,Import cost CZK\n" +
		"SORAH Gel Polish 15ml,Gel Polish,,250,9.90,4.50,110\n" +
		"SORAH Gel Polish 15ml,Gel Polish,,250,9.90,4.50,110\n" +
		"Nail File,Accessories,NF-CUSTOM,50,2,1,25\n"
	if err := os.WriteFile(productsPath, []byte(products), 0o644); err != nil {
		t.Fatal(err)
	}

	supplierPath := filepath.Join(dir, "stock.tsv")
	stock := "Product name\tSupplier\tStock Date\n" +
		"SORAH Gel Polish 15ml\tBeauty Depot GmbH\t2024-03-01\n"
	if err := os.WriteFile(supplierPath, []byte(stock), 0o644); err != nil {
		t.Fatal(err)
	}

	suppliers, err := LoadSupplierMap(supplierPath)
	if err != nil {
		t.Fatal(err)
	}

	rows, stats, err := ProcessInventory(productsPath, suppliers, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[0].SKU != "GP-SOGEPO" {
		t.Errorf("rows[0].SKU = %q", rows[0].SKU)
	}
	if rows[1].SKU != "GP-SOGEPO-1" {
		t.Errorf("rows[1].SKU = %q", rows[1].SKU)
	}
	if rows[2].SKU != "NF-CUSTOM" {
		t.Errorf("rows[2].SKU = %q", rows[2].SKU)
	}

	if rows[0].Supplier != "Beauty Depot GmbH" {
		t.Errorf("rows[0].Supplier = %q", rows[0].Supplier)
	}
	if rows[0].PriceCZK != 250 || rows[0].PriceEUR != 9.9 {
		t.Errorf("prices = %v/%v", rows[0].PriceCZK, rows[0].PriceEUR)
	}

	if stats.Total != 3 || stats.Generated != 2 || stats.Reused != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestCustomerProcessorWithoutDB(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "export.tsv")
	input := "User ID\tAddress\n" +
		"john°doe\tA Nails Studio; Tran Thi Mai; Hauptstrasse 12a; 60313 Frankfurt, DE\n" +
		"jane123\tpickup\n"
	if err := os.WriteFile(inputPath, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Config{DefaultCountry: "Germany"}
	processor := NewCustomerProcessor(cfg, nil)

	rows, stats, err := processor.ProcessFile(inputPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.FacebookID != "john.doe" {
		t.Errorf("FacebookID = %q", first.FacebookID)
	}
	if first.FacebookURL != "https://facebook.com/john.doe" {
		t.Errorf("FacebookURL = %q", first.FacebookURL)
	}
	if first.Name != "Thi Mai Tran" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Address != "Hauptstrasse 12a" {
		t.Errorf("Address = %q", first.Address)
	}
	if first.City != "Frankfurt" || first.ZipCode != "60313" || first.Country != "Germany" {
		t.Errorf("city/zip/country = %q/%q/%q", first.City, first.ZipCode, first.Country)
	}
	if first.BillingCompany != "A Nails Studio" {
		t.Errorf("BillingCompany = %q", first.BillingCompany)
	}
	if first.BillingLastName != "Tran" || first.BillingFirstName != "Thi Mai" {
		t.Errorf("billing name = (%q, %q)", first.BillingFirstName, first.BillingLastName)
	}

	second := rows[1]
	if second.Name != "jane123" {
		t.Errorf("second Name = %q", second.Name)
	}
	if second.Notes != "No valid address" {
		t.Errorf("second Notes = %q", second.Notes)
	}

	if stats.Total != 2 || stats.Parsed != 1 || stats.Skipped != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
