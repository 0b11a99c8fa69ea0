// Package workbook reads the input extracts and writes the result
// workbook. Sheets are located by fixed names; the first row is the
// header row.
package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dkrause/famrecon/internal/table"
)

// Required source headers per sheet. Missing ones are a structural
// error that aborts the run before any output.
var (
	RequiredFAMHeaders = []string{"patnr", "pzn", "vo-datum", "anzahl", "avk"}
	RequiredTMHeaders  = []string{"VO-ID", "PZN"}
)

// ReadSheet loads one sheet into a raw table. Row positions are
// 0-based over the data rows; ragged rows are padded so every row has
// a value slot for every header.
func ReadSheet(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return readSheet(f, sheet)
}

func readSheet(f *excelize.File, sheet string) (*table.Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q could not be read: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	headers := make([]string, 0, len(rows[0]))
	for _, h := range rows[0] {
		headers = append(headers, strings.TrimSpace(h))
	}

	t := table.New(headers...)
	for i, row := range rows[1:] {
		cells := make(map[string]string, len(headers))
		for j, h := range headers {
			if h == "" {
				continue
			}
			if j < len(row) {
				cells[h] = row[j]
			} else {
				cells[h] = ""
			}
		}
		t.Append(i, cells)
	}
	return t, nil
}

// ValidateHeaders checks that every required source header is present.
func ValidateHeaders(t *table.Table, required []string) error {
	present := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		present[c] = true
	}
	var missing []string
	for _, h := range required {
		if !present[h] {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ReadInput loads both extract sheets from one workbook and validates
// their headers.
func ReadInput(path, famSheet, tmSheet string) (fam, tm *table.Table, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	fam, err = readSheet(f, famSheet)
	if err != nil {
		return nil, nil, err
	}
	if err := ValidateHeaders(fam, RequiredFAMHeaders); err != nil {
		return nil, nil, fmt.Errorf("sheet %q: %w", famSheet, err)
	}

	tm, err = readSheet(f, tmSheet)
	if err != nil {
		return nil, nil, err
	}
	if err := ValidateHeaders(tm, RequiredTMHeaders); err != nil {
		return nil, nil, fmt.Errorf("sheet %q: %w", tmSheet, err)
	}
	return fam, tm, nil
}
