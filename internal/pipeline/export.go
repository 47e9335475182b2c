package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"recordlink/internal"
)

var customerHeaders = []string{
	"Name", "Facebook ID", "Facebook URL", "Email", "Phone",
	"Address", "City", "Zip Code", "Country", "Notes",
	"Type", "Preferred Language", "Preferred Currency",
	"Billing First Name", "Billing Last Name", "Billing Company",
	"Billing Email", "Billing Phone", "Billing Street", "Billing Street Number",
	"Billing City", "Billing Zip Code", "Billing Country",
}

// ExportCustomersXLSX writes the processed customer rows as an import-ready
// workbook.
func ExportCustomersXLSX(rows []internal.CustomerExportRow, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range customerHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, row := range rows {
		rowNum := i + 2
		set := func(col int, value any) {
			cell, err := excelize.CoordinatesToCellName(col, rowNum)
			if err != nil {
				return
			}
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.Name)
		set(2, row.FacebookID)
		set(3, row.FacebookURL)
		set(4, row.Email)
		set(5, row.Phone)
		set(6, row.Address)
		set(7, row.City)
		set(8, row.ZipCode)
		set(9, row.Country)
		set(10, row.Notes)
		set(11, row.Type)
		set(12, row.PreferredLanguage)
		set(13, row.PreferredCurrency)
		set(14, row.BillingFirstName)
		set(15, row.BillingLastName)
		set(16, row.BillingCompany)
		set(17, row.BillingEmail)
		set(18, row.BillingPhone)
		set(19, row.BillingStreet)
		set(20, row.BillingStreetNumber)
		set(21, row.BillingCity)
		set(22, row.BillingZipCode)
		set(23, row.BillingCountry)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}

var inventoryHeaders = []string{
	"Name", "SKU", "Category", "Supplier",
	"Price CZK", "Price EUR", "Import cost EUR", "Import cost CZK",
}

// ExportInventoryXLSX writes the coded inventory as a workbook.
func ExportInventoryXLSX(rows []internal.InventoryRow, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range inventoryHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, row := range rows {
		rowNum := i + 2
		set := func(col int, value any) {
			cell, err := excelize.CoordinatesToCellName(col, rowNum)
			if err != nil {
				return
			}
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.Name)
		set(2, row.SKU)
		set(3, row.Category)
		set(4, row.Supplier)
		set(5, row.PriceCZK)
		set(6, row.PriceEUR)
		set(7, row.ImportCostEUR)
		set(8, row.ImportCostCZK)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}
