package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"recordlink/internal"
	"recordlink/internal/addressbook"
	"recordlink/internal/config"
	"recordlink/internal/extract"
	"recordlink/internal/pipeline"
	"recordlink/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "customers:process":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "User-ID/address TSV export")
		output := fs.String("output", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		out := *output
		if out == "" {
			out = filepath.Join(cfg.OutputDir, "customers.xlsx")
		}

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		processor := pipeline.NewCustomerProcessor(cfg, db)
		rows, stats, err := processor.ProcessFile(*input)
		must(err)
		for _, row := range rows {
			_, err := db.InsertCustomer(internal.Customer{
				Name:       row.Name,
				FacebookID: row.FacebookID,
				Email:      row.Email,
				Phone:      row.Phone,
				Address:    row.Address,
				City:       row.City,
				ZipCode:    row.ZipCode,
				Country:    row.Country,
				Notes:      row.Notes,
			})
			must(err)
		}
		must(pipeline.ExportCustomersXLSX(rows, out))
		fmt.Printf("customers done total=%d parsed=%d skipped=%d cacheHits=%d output=%s\n",
			stats.Total, stats.Parsed, stats.Skipped, stats.CacheHits, out)

	case "addressbook:merge":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		customersPath := fs.String("customers", "", "customers xlsx (default: customers stored in the db)")
		csvPath := fs.String("csv", "", "semicolon CSV address book")
		germanPath := fs.String("german", "", "pasted plain-text address book")
		htmlPath := fs.String("html", "", "HTML address book page")
		reverse := fs.Bool("reverse", false, "match customers against addresses instead")
		output := fs.String("output", "", "output json path")
		_ = fs.Parse(os.Args[2:])

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		var customers []internal.Customer
		var customerIDs []int64
		if strings.TrimSpace(*customersPath) != "" {
			customers, err = pipeline.ReadCustomersXLSX(*customersPath)
		} else {
			customers, customerIDs, err = db.ListCustomers()
		}
		must(err)
		if len(customers) == 0 {
			must(fmt.Errorf("no customers: pass --customers or run customers:process first"))
		}

		var addresses []internal.AddressEntry
		for _, src := range []struct {
			path   string
			format string
		}{
			{*csvPath, "csv"},
			{*germanPath, "german"},
			{*htmlPath, "html"},
		} {
			if src.path == "" {
				continue
			}
			entries, err := addressbook.ReadFile(src.path, src.format)
			must(err)
			addresses = append(addresses, entries...)
		}
		if len(addresses) == 0 {
			must(fmt.Errorf("no address book given: pass --csv, --german or --html"))
		}

		svc := pipeline.NewMergeService(cfg)
		result := svc.Merge(customers, addresses, *reverse)

		if customerIDs == nil {
			customerIDs = make([]int64, len(customers))
			for i, c := range customers {
				customerIDs[i], err = db.InsertCustomer(c)
				must(err)
			}
		}
		addressIDs := make([]int64, len(addresses))
		for i, a := range addresses {
			addressIDs[i], err = db.InsertAddress(a)
			must(err)
		}
		for _, pair := range result.Pairs {
			must(db.InsertMatch(addressIDs[pair.AddressIndex], customerIDs[pair.CustomerIndex], pair.Method))
		}
		if prev, err := db.GetMetadata("last_merge_at"); err == nil && prev != nil {
			fmt.Printf("previous merge: %s\n", *prev)
		}
		must(db.SetMetadata("last_merge_at", time.Now().Format(time.RFC3339)))

		blob, err := json.MarshalIndent(result, "", "  ")
		must(err)
		if strings.TrimSpace(*output) == "" {
			fmt.Println(string(blob))
		} else {
			must(os.MkdirAll(filepath.Dir(*output), 0o755))
			must(os.WriteFile(*output, blob, 0o644))
		}
		fmt.Printf("merge done customers=%d addresses=%d pairs=%d unmatchedAddresses=%d unmatchedCustomers=%d\n",
			len(customers), len(addresses), len(result.Pairs),
			len(result.UnmatchedAddresses), len(result.UnmatchedCustomers))

	case "inventory:process":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "raw product list (csv/tsv)")
		supplier := fs.String("supplier", "", "supplier stock list (csv/tsv)")
		output := fs.String("output", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		out := *output
		if out == "" {
			out = filepath.Join(cfg.OutputDir, "inventory.xlsx")
		}

		var suppliers *pipeline.SupplierMap
		if strings.TrimSpace(*supplier) != "" {
			suppliers, err = pipeline.LoadSupplierMap(*supplier)
			must(err)
		}

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		rows, stats, err := pipeline.ProcessInventory(*input, suppliers, db)
		must(err)
		must(pipeline.ExportInventoryXLSX(rows, out))
		fmt.Printf("inventory done total=%d generated=%d reused=%d suppliers=%d output=%s\n",
			stats.Total, stats.Generated, stats.Reused, stats.Suppliers, out)

	case "parse":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		text := fs.String("text", "", "free-text address to parse")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*text) == "" {
			must(fmt.Errorf("--text is required"))
		}

		extractor := extract.NewExtractor(cfg.DefaultCountry)
		rec := extractor.Parse(*text)
		blob, err := json.MarshalIndent(rec, "", "  ")
		must(err)
		fmt.Println(string(blob))

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: recordlink <command>")
	fmt.Println("commands:")
	fmt.Println("  customers:process --input=export.tsv [--output=./out/customers.xlsx]")
	fmt.Println("  addressbook:merge [--customers=customers.xlsx] [--csv=...] [--german=...] [--html=...] [--reverse] [--output=merged.json]")
	fmt.Println("  inventory:process --input=products.csv [--supplier=stock.tsv] [--output=./out/inventory.xlsx]")
	fmt.Println("  parse --text=\"...\"")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
