package pipeline

import (
	"strconv"
	"strings"

	"recordlink/internal"
	"recordlink/internal/sku"
	"recordlink/internal/storage"
	"recordlink/internal/textnorm"
)

const supplierPrefixLen = 15

// SupplierMap resolves product names to supplier names. Keys are kept in
// insertion order so the substring and prefix lookups always scan candidates
// the same way.
type SupplierMap struct {
	keys      []string
	suppliers map[string]string
	dates     map[string]string
}

func NewSupplierMap() *SupplierMap {
	return &SupplierMap{
		suppliers: map[string]string{},
		dates:     map[string]string{},
	}
}

func (m *SupplierMap) put(key, supplier, date string) {
	if key == "" || supplier == "" {
		return
	}
	if prev, ok := m.dates[key]; ok {
		// Stock dates are YYYY-MM-DD, so the newest entry wins by string order.
		if date <= prev {
			return
		}
		m.suppliers[key] = supplier
		m.dates[key] = date
		return
	}
	m.keys = append(m.keys, key)
	m.suppliers[key] = supplier
	m.dates[key] = date
}

// LoadSupplierMap reads the supplier stock list and indexes it by normalized
// product name and, when present, by SKU.
func LoadSupplierMap(path string) (*SupplierMap, error) {
	rows, err := readDelimited(path)
	if err != nil {
		return nil, err
	}

	m := NewSupplierMap()
	for _, row := range rows {
		name := pickField(row, "Product name", "Name", "Product")
		supplier := pickField(row, "Supplier")
		date := pickField(row, "Stock Date", "Date")
		code := pickField(row, "SKU", "Code")

		m.put(textnorm.ForMatching(name), supplier, date)
		if code != "" {
			m.put("sku:"+strings.ToUpper(code), supplier, date)
		}
	}
	return m, nil
}

// FindSupplier resolves the supplier for a product, trying exact SKU, exact
// name, then looser name containment and prefix lookups.
func (m *SupplierMap) FindSupplier(name, code string) string {
	if code != "" {
		if s, ok := m.suppliers["sku:"+strings.ToUpper(code)]; ok {
			return s
		}
	}

	key := textnorm.ForMatching(name)
	if key == "" {
		return ""
	}
	if s, ok := m.suppliers[key]; ok {
		return s
	}

	for _, k := range m.keys {
		if strings.HasPrefix(k, "sku:") {
			continue
		}
		if strings.Contains(k, key) || strings.Contains(key, k) {
			return m.suppliers[k]
		}
	}

	if len(key) >= supplierPrefixLen {
		want := key[:supplierPrefixLen]
		for _, k := range m.keys {
			if strings.HasPrefix(k, "sku:") {
				continue
			}
			if len(k) >= supplierPrefixLen && k[:supplierPrefixLen] == want {
				return m.suppliers[k]
			}
		}
	}

	return ""
}

// InventoryStats summarizes one inventory run.
type InventoryStats struct {
	Total     int
	Generated int
	Reused    int
	Suppliers int
}

// ProcessInventory reads the raw product list, assigns every row a unique SKU
// and resolves suppliers. Codes issued in prior runs are honored via the db;
// pass a nil db for a standalone run.
func ProcessInventory(inputPath string, suppliers *SupplierMap, db *storage.DB) ([]internal.InventoryRow, InventoryStats, error) {
	rows, err := readDelimited(inputPath)
	if err != nil {
		return nil, InventoryStats{}, err
	}

	var issued []string
	if db != nil {
		if issued, err = db.ListIssuedCodes(); err != nil {
			return nil, InventoryStats{}, err
		}
	}
	registry := sku.NewRegistry(issued...)

	stats := InventoryStats{}
	out := make([]internal.InventoryRow, 0, len(rows))
	var newCodes []string
	for _, row := range rows {
		name := pickField(row, "Name", "Product name", "Product")
		if name == "" {
			continue
		}
		stats.Total++

		item := internal.InventoryRow{
			Name:          name,
			Category:      pickField(row, "Category"),
			PriceCZK:      cleanPrice(pickField(row, "Price CZK", "PriceCZK")),
			PriceEUR:      cleanPrice(pickField(row, "Price EUR", "PriceEUR")),
			ImportCostEUR: cleanPrice(pickField(row, "Import cost EUR", "Import Cost EUR")),
			ImportCostCZK: cleanPrice(pickField(row, "Import cost CZK", "Import Cost CZK")),
		}

		code := strings.TrimSpace(pickField(row, "SKU", "Code"))
		if code != "" && !registry.Has(code) {
			item.SKU = strings.ToUpper(code)
			registry.Register(item.SKU)
			newCodes = append(newCodes, item.SKU)
			stats.Reused++
		} else {
			item.SKU = sku.Generate(item.Category, name, registry)
			newCodes = append(newCodes, item.SKU)
			stats.Generated++
		}

		if suppliers != nil {
			item.Supplier = suppliers.FindSupplier(name, item.SKU)
			if item.Supplier != "" {
				stats.Suppliers++
			}
		}

		out = append(out, item)
	}

	if db != nil && len(newCodes) > 0 {
		if err := db.AddIssuedCodes(newCodes); err != nil {
			return nil, InventoryStats{}, err
		}
	}

	return out, stats, nil
}

func pickField(row map[string]string, names ...string) string {
	for _, name := range names {
		if v, ok := row[name]; ok && v != "" {
			return v
		}
	}
	for _, name := range names {
		for k, v := range row {
			if strings.EqualFold(k, name) && v != "" {
				return v
			}
		}
	}
	return ""
}

// cleanPrice parses a spreadsheet price cell. Thousands commas are stripped;
// formula placeholders and empty cells read as zero.
func cleanPrice(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" || s == "#N/A" || strings.EqualFold(s, "Loading...") {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
