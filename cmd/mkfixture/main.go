// mkfixture writes a small representative input workbook for manual
// runs: a FAM sheet and a TM sheet covering the interesting cases
// (repeating charge patterns, duplicates, reject candidates), plus an
// optional PLZ→KV reference workbook.
// Usage: go run ./cmd/mkfixture --out testdata/sample.xlsx --kv-out testdata/kv.xlsx
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dkrause/famrecon/internal/config"
	"github.com/dkrause/famrecon/internal/model"
)

func main() {
	out := flag.String("out", "testdata/sample.xlsx", "output workbook")
	kvOut := flag.String("kv-out", "", "optional PLZ→KV reference workbook")
	flag.Parse()

	if err := writeSample(*out); err != nil {
		fmt.Fprintf(os.Stderr, "write sample: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)

	if *kvOut != "" {
		if err := writeKVLookup(*kvOut); err != nil {
			fmt.Fprintf(os.Stderr, "write kv lookup: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *kvOut)
	}
}

func writeSample(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	recent := time.Now().AddDate(0, -3, 0).Format("02.01.2006")

	f.SetSheetName(f.GetSheetName(0), config.DefaultFAMSheet)
	famRows := [][]any{
		toAny(model.FAMColumnOrder),
		// clean row, unit-price style
		{"AOK", "1001", "04773414", "Ibuprofen 600", "12,50€", recent, 2, "123456", "Dr. med.",
			"Anna", "Beispiel", "Hauptstrasse 1b", "6618", "Naumburg", "Adler Apotheke GmbH", "06618",
			"Naumburg", "123456789", "MVZ Saale e.V.", "Markt 2", "034512345", "Sachsen-Anhalt",
			"Innere Medizin (Facharzt)", "Arzt", recent, "", "80001", "654321", "Max Muster e.K.", 2, "90001"},
		// price missing -> rejected
		{"TK", "1002", "01234567", "Aspirin Complex", "", recent, 1, "234567", "",
			"Jonas", "Muster", "Ring 5", "99084", "Erfurt", "Hirsch Apotheke", "99084",
			"Erfurt", "987654321", "Praxis Nord", "Ring 5", "", "Thüringen",
			"Allgemeinmedizin", "Arzt", recent, "", "80002", "654322", "", 1, "90002"},
		// essential column (patnr) missing -> rejected
		{"DAK", "", "07654321", "Metformin", "8,20€", recent, 1, "345678", "Prof. Dr. Dr.",
			"Eva", "Probe", "Allee 3", "10115", "Berlin", "Bären Apotheke OHG", "10115",
			"Berlin", "111222333", "", "Allee 3", "", "Berlin",
			"Diabetologie", "Arzt", recent, "", "80003", "654323", "", 1, "90003"},
		// second observation of the first PZN, total-price style
		{"AOK", "1004", "04773414", "Ibuprofen 600", "25,00€", recent, 4, "123456", "Dr.",
			"Anna", "Beispiel", "Hauptstr. 1b", "06618", "Naumburg", "Adler Apotheke", "06618",
			"Naumburg", "123456789", "MVZ Saale", "Markt 2", "034512345", "",
			"Innere Medizin", "Arzt", recent, "", "80004", "654321", "Max Muster", 4, "90004"},
	}
	for i, row := range famRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(config.DefaultFAMSheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(config.DefaultTMSheet); err != nil {
		return err
	}
	tmRows := [][]any{
		toAny(model.TMColumnOrder),
		// two charges of an A,B pattern plus one duplicate inside a charge
		{"90001", "", 1, "11111111", "Substanz A", 1, 10, 1, 4.50, "N1", "ml", "Lösung", "L01XA01", "Cisplatin"},
		{"90001", "", 2, "22222222", "Substanz B", 1, 20, 1, 3.25, "N1", "ml", "Lösung", "L01XA02", "Carboplatin"},
		{"90001", "", 3, "11111111", "Substanz A", 1, 10, 1, 4.50, "N1", "ml", "Lösung", "L01XA01", "Cisplatin"},
		{"90001", "", 4, "22222222", "Substanz B", 1, 20, 1, 3.25, "N1", "ml", "Lösung", "L01XA02", "Carboplatin"},
		{"90001", "", 5, "22222222", "Substanz B", 1, 20, 1, 3.25, "N1", "ml", "Lösung", "L01XA02", "Carboplatin"},
		// courier line -> rejected from the raw view
		{"90002", "", 1, "06461110", "Botendienst", 1, 1, 1, 0.0, "", "", "", "", ""},
		// missing partial quantity price -> rejected
		{"90003", "", 1, "33333333", "Substanz C", 1, 5, 1, "", "N2", "mg", "Tablette", "A10BA02", "Metformin"},
	}
	for i, row := range tmRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(config.DefaultTMSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeKVLookup(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"PLZ", "Ort", "Bundesland", "KV"},
		{"06618", "Naumburg", "Sachsen-Anhalt", "3"},
		{"99084", "Erfurt", "Thüringen", "14"},
		{"10115", "Berlin", "Berlin", "16"},
	}
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func toAny(vals []string) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
