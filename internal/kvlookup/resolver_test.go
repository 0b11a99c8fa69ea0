package kvlookup

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeLookup(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "kv.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestResolveByName(t *testing.T) {
	r := New(nil)
	if got := r.Resolve("Sachsen-Anhalt", ""); got != "3" {
		t.Errorf("Resolve(Sachsen-Anhalt) = %q, want 3", got)
	}
	if got := r.Resolve(" Nordrhein ", ""); got != "17" {
		t.Errorf("Resolve with padding = %q, want 17", got)
	}
}

func TestResolveByPostcode(t *testing.T) {
	r := New(map[string]string{"06618": "3"})
	if got := r.Resolve("", "06618"); got != "3" {
		t.Errorf("Resolve by postcode = %q, want 3", got)
	}
	if got := r.Resolve("kein Bezirk", "06618"); got != "3" {
		t.Errorf("unknown name should fall through to the postcode, got %q", got)
	}
	if got := r.Resolve("", "99999"); got != "" {
		t.Errorf("unknown postcode = %q, want absent", got)
	}
}

func TestResolveNameBeatsPostcode(t *testing.T) {
	r := New(map[string]string{"10115": "16"})
	if got := r.Resolve("Bayern", "10115"); got != "6" {
		t.Errorf("Resolve = %q, want the name tier to win with 6", got)
	}
}

func TestLoad(t *testing.T) {
	path := writeLookup(t, [][]any{
		{"PLZ", "Ort", "Bundesland", "KV"},
		{"06618", "Naumburg", "Sachsen-Anhalt", "3"},
		{"06618", "Naumburg", "Sachsen-Anhalt", "99"},
		{"99084", "Erfurt", "Thüringen", "14"},
	})

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := r.Resolve("", "06618"); got != "3" {
		t.Errorf("duplicate postcode should keep the first code, got %q", got)
	}
	if got := r.Resolve("", "99084"); got != "14" {
		t.Errorf("Resolve(99084) = %q, want 14", got)
	}
}

func TestLoadTooFewColumns(t *testing.T) {
	path := writeLookup(t, [][]any{
		{"PLZ", "KV"},
		{"06618", "3"},
	})
	if _, err := Load(path); err == nil {
		t.Fatal("Load should fail on a sheet with fewer than 4 columns")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Fatal("Load should fail on a missing file")
	}
}
