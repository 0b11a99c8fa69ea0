package workbook

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/dkrause/famrecon/internal/analyze"
	"github.com/dkrause/famrecon/internal/model"
	"github.com/dkrause/famrecon/internal/reject"
	"github.com/dkrause/famrecon/internal/table"
)

// Output sheet names.
const (
	SheetFAMActive    = "FAM_aufbereitet"
	SheetTMActive     = "TM_aufbereitet"
	SheetNotes        = "Analyse_Hinweise"
	SheetFAMRejected  = "Ausschuss_FAM"
	SheetTMRejected   = "Ausschuss_TM"
	famRejectedSource = "FAM ihpE aufbereitet"
	tmRejectedSource  = "TM aufbereitet"
)

// Result is everything that goes into the output workbook.
type Result struct {
	ActiveFAM   *table.Table // canonical columns
	ActiveTM    *table.Table
	Notes       []analyze.Note
	RejectedFAM *reject.Buckets
	RejectedTM  *reject.Buckets
}

// Write builds the single result workbook: both active sheets in their
// fixed source-header column order, the notes sheet, and one rejection
// report per record kind.
func Write(path string, res Result) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetFAMActive)
	writeActive(f, SheetFAMActive, res.ActiveFAM, model.FAMColumnOrder, model.FAMHeaderMapping)

	if _, err := f.NewSheet(SheetTMActive); err != nil {
		return fmt.Errorf("create sheet %q: %w", SheetTMActive, err)
	}
	writeActive(f, SheetTMActive, res.ActiveTM, model.TMColumnOrder, model.TMHeaderMapping)

	if _, err := f.NewSheet(SheetNotes); err != nil {
		return fmt.Errorf("create sheet %q: %w", SheetNotes, err)
	}
	for i, note := range res.Notes {
		setRow(f, SheetNotes, i+1, []any{note.Label, note.Value})
	}

	if err := writeRejected(f, SheetFAMRejected, famRejectedSource, res.RejectedFAM); err != nil {
		return err
	}
	if err := writeRejected(f, SheetTMRejected, tmRejectedSource, res.RejectedTM); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// writeActive emits a canonical table under its source headers in the
// fixed export column order.
func writeActive(f *excelize.File, sheet string, t *table.Table, order []string, mapping map[string]string) {
	header := make([]any, len(order))
	for i, h := range order {
		header[i] = h
	}
	setRow(f, sheet, 1, header)

	for i, r := range t.Rows {
		vals := make([]any, len(order))
		for j, h := range order {
			vals[j] = cellValue(r.Get(mapping[h]))
		}
		setRow(f, sheet, i+2, vals)
	}
}

// writeRejected emits one block per rejection reason: a free-text
// header naming the rule, the raw column headers, the raw rejected
// rows, and a blank separator row.
func writeRejected(f *excelize.File, sheet, sourceName string, buckets *reject.Buckets) error {
	if buckets == nil || len(buckets.Reasons()) == 0 {
		return nil
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}

	rowIdx := 1
	for _, reason := range buckets.Reasons() {
		rows := buckets.Rows(reason)
		if rows.Len() == 0 {
			continue
		}

		header := fmt.Sprintf("Folgende Zeilen wurden aus dem Sheet %q herausgeschnitten, da %s:", sourceName, reason)
		setRow(f, sheet, rowIdx, []any{header})
		rowIdx += 2

		cols := make([]any, len(rows.Columns))
		for i, c := range rows.Columns {
			cols[i] = c
		}
		setRow(f, sheet, rowIdx, cols)
		rowIdx++

		for _, r := range rows.Rows {
			vals := make([]any, len(rows.Columns))
			for i, c := range rows.Columns {
				vals[i] = cellValue(r.Get(c))
			}
			setRow(f, sheet, rowIdx, vals)
			rowIdx++
		}
		rowIdx++
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, vals []any) {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetSheetRow(sheet, cell, &vals)
}

// cellValue writes numerals as numbers so spreadsheet consumers can
// aggregate them; everything else stays text. Absent stays blank.
func cellValue(v string) any {
	if v == "" {
		return nil
	}
	if len(v) > 1 && v[0] == '0' && v[1] != '.' {
		// leading zeros are significant (PLZ, PZN)
		return v
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
