// Package kvlookup resolves the KV district ("Kassenärztliche
// Vereinigung") of a billing line. Resolution is two-tier: the spelled
// out district name first, then the doctor's postal code against a
// reference workbook.
package kvlookup

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// KVNameToCode maps the 17 KV district names to their numeric codes.
var KVNameToCode = map[string]string{
	"Baden-Württemberg":      "1",
	"Westfalen-Lippe":        "2",
	"Sachsen-Anhalt":         "3",
	"Rheinland-Pfalz":        "4",
	"Niedersachsen":          "5",
	"Bayern":                 "6",
	"Bremen":                 "7",
	"Hessen":                 "8",
	"Mecklenburg-Vorpommern": "9",
	"Sachsen":                "10",
	"Brandenburg":            "11",
	"Saarland":               "12",
	"Schleswig-Holstein":     "13",
	"Thüringen":              "14",
	"Hamburg":                "15",
	"Berlin":                 "16",
	"Nordrhein":              "17",
}

// Resolver holds the postal-code lookup loaded once at construction.
// Read-only afterwards, safe for concurrent reads.
type Resolver struct {
	plzToCode map[string]string
}

// New builds a resolver from an already-loaded postal-code map.
func New(plzToCode map[string]string) *Resolver {
	if plzToCode == nil {
		plzToCode = make(map[string]string)
	}
	return &Resolver{plzToCode: plzToCode}
}

// Load reads the reference workbook: postal code in column A, KV code
// in column D, header row present. Duplicate postal codes keep the
// first occurrence. Fails when the file is missing or the sheet has
// fewer than four columns.
func Load(path string) (*Resolver, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open kv lookup file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read kv lookup sheet: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) < 4 {
		return nil, fmt.Errorf("kv lookup sheet needs at least 4 columns (PLZ in A, KV code in D)")
	}

	plzToCode := make(map[string]string)
	for _, row := range rows[1:] {
		if len(row) < 4 {
			continue
		}
		plz := strings.TrimSpace(row[0])
		code := strings.TrimSpace(row[3])
		if plz == "" {
			continue
		}
		if _, seen := plzToCode[plz]; !seen {
			plzToCode[plz] = code
		}
	}

	return &Resolver{plzToCode: plzToCode}, nil
}

// Resolve maps a district value to its KV code: the fixed name table
// first, then the postal-code lookup, else absent.
func (r *Resolver) Resolve(district, postcode string) string {
	if code, ok := KVNameToCode[strings.TrimSpace(district)]; ok {
		return code
	}
	if code, ok := r.plzToCode[strings.TrimSpace(postcode)]; ok {
		return code
	}
	return ""
}
