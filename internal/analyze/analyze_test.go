package analyze

import (
	"math"
	"testing"

	"github.com/dkrause/famrecon/internal/table"
)

func famTable(rows ...[3]string) *table.Table {
	t := table.New("pzn", "medicine_price", "amount")
	for i, r := range rows {
		t.Append(i, map[string]string{"pzn": r[0], "medicine_price": r[1], "amount": r[2]})
	}
	return t
}

func TestPriceConsistencyYes(t *testing.T) {
	fam := famTable(
		[3]string{"P1", "10.00", "1"},
		[3]string{"P1", "20.00", "2"},
		[3]string{"P2", "5.00", "1"},
	)
	if got := PriceConsistency(fam, 0.20); got != "Yes" {
		t.Errorf("PriceConsistency = %q, want Yes", got)
	}
}

func TestPriceConsistencyNo(t *testing.T) {
	fam := famTable(
		[3]string{"P1", "10.00", "1"},
		[3]string{"P1", "13.00", "1"},
	)
	if got := PriceConsistency(fam, 0.20); got != "No" {
		t.Errorf("PriceConsistency = %q, want No", got)
	}
}

func TestPriceConsistencySkipsUnusableRows(t *testing.T) {
	fam := famTable(
		[3]string{"P1", "10.00", "1"},
		[3]string{"P1", "", "1"},
		[3]string{"", "99.00", "1"},
		[3]string{"P1", "10.00", "0"},
	)
	if got := PriceConsistency(fam, 0.20); got != "Yes" {
		t.Errorf("PriceConsistency = %q, want Yes", got)
	}
}

func TestPriceTypeGP(t *testing.T) {
	// Price doubles with the amount: a total explained by one unit price.
	fam := famTable(
		[3]string{"P1", "10.00", "2"},
		[3]string{"P1", "20.00", "4"},
	)
	if got := PriceType(fam); got != "GP" {
		t.Errorf("PriceType = %q, want GP", got)
	}
}

func TestPriceTypeEPConstantPrice(t *testing.T) {
	fam := famTable(
		[3]string{"P1", "10.00", "1"},
		[3]string{"P1", "10.00", "3"},
	)
	if got := PriceType(fam); got != "EP" {
		t.Errorf("PriceType = %q, want EP", got)
	}
}

func TestPriceTypeEPVaryingRatio(t *testing.T) {
	fam := famTable(
		[3]string{"P1", "10.00", "2"},
		[3]string{"P1", "30.00", "4"},
	)
	if got := PriceType(fam); got != "EP" {
		t.Errorf("PriceType = %q, want EP", got)
	}
}

func TestTotalAVKSum(t *testing.T) {
	fam := famTable(
		[3]string{"P1", "10.00", "2"},
		[3]string{"P2", "20.00", "3"},
	)
	if got := TotalAVKSum(fam, "GP"); math.Abs(got-30) > 1e-9 {
		t.Errorf("GP sum = %v, want 30", got)
	}
	if got := TotalAVKSum(fam, "EP"); math.Abs(got-80) > 1e-9 {
		t.Errorf("EP sum = %v, want 80", got)
	}
}

func TestDetectDateFormat(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"31.12.2024", "dd.mm.yyyy"},
		{"31.12.24", "dd.mm.yy"},
		{"2024-12-31", "yyyy-mm-dd"},
		{"31-12-24", "dd-mm-yy"},
		{"2024-12-31 10:30:00", "yyyy-mm-dd"},
		{"20241231", "yyyymmdd"},
		{"gestern", "Unknown"},
	}
	for _, tc := range cases {
		raw := table.New("vo-datum")
		raw.Append(0, map[string]string{"vo-datum": ""})
		raw.Append(1, map[string]string{"vo-datum": tc.value})
		if got := DetectDateFormat(raw, "vo-datum"); got != tc.want {
			t.Errorf("DetectDateFormat(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestDetectDateFormatMissingColumn(t *testing.T) {
	raw := table.New("other")
	if got := DetectDateFormat(raw, "vo-datum"); got != "N/A - Column 'vo-datum' not found" {
		t.Errorf("DetectDateFormat = %q", got)
	}
}

func TestDetectDateFormatNoEntries(t *testing.T) {
	raw := table.New("vo-datum")
	raw.Append(0, map[string]string{"vo-datum": "  "})
	if got := DetectDateFormat(raw, "vo-datum"); got != "No date entries found" {
		t.Errorf("DetectDateFormat = %q", got)
	}
}

func voidTables(famPZN, famVoID, tmVoID string) (*table.Table, *table.Table) {
	fam := table.New("pzn", "vo_id")
	fam.Append(0, map[string]string{"pzn": famPZN, "vo_id": famVoID})
	tm := table.New("vo_id")
	tm.Append(0, map[string]string{"vo_id": tmVoID})
	return fam, tm
}

func TestVoIDTMConsistency(t *testing.T) {
	fam, tm := voidTables("09999100", "v1", "v1")
	if got := VoIDTMConsistency(fam, tm); got != "Yes" {
		t.Errorf("matched vo_id = %q, want Yes", got)
	}

	fam, tm = voidTables("9999100", "v1", "v2")
	if got := VoIDTMConsistency(fam, tm); got != "No" {
		t.Errorf("unmatched vo_id = %q, want No", got)
	}

	fam, tm = voidTables("01234567", "v1", "v1")
	if got := VoIDTMConsistency(fam, tm); got != "N/A - PZN 09999100 not found in FAM" {
		t.Errorf("absent special PZN = %q", got)
	}
}

func TestRunNotesOrder(t *testing.T) {
	rawFAM := table.New("pzn", "medicine_price", "amount", "vo-datum")
	rawFAM.Append(0, map[string]string{"vo-datum": "31.12.2024"})
	rawFAM.Append(1, map[string]string{"vo-datum": "30.12.2024"})

	fam := famTable(
		[3]string{"P1", "10.00", "2"},
		[3]string{"P1", "20.00", "4"},
	)
	rawTM := table.New("vo_id")
	rawTM.Append(0, map[string]string{"vo_id": "v1"})
	tm := table.New("vo_id")

	res := Run(rawFAM, fam, rawTM, tm, "vo-datum", 0.20)

	wantLabels := []string{
		"… Versicherten-Pseudonyme stimmen mit Vorgänger-Datensatz überein",
		"Preis konsistent innerhalb der Daten?",
		"avk =",
		"avk Summe:",
		"Datumsformat:",
		"VO-ID & TM stimmig?",
		"Anzahl Zeilen FAM original:",
		"Anzahl Zeilen FAM aufbereitet:",
		"Anzahl Zeilen TM original:",
		"Anzahl Zeilen TM aufbereitet:",
	}
	if len(res.Notes) != len(wantLabels) {
		t.Fatalf("notes = %d entries, want %d", len(res.Notes), len(wantLabels))
	}
	for i, want := range wantLabels {
		if res.Notes[i].Label != want {
			t.Errorf("note[%d] label = %q, want %q", i, res.Notes[i].Label, want)
		}
	}

	if res.PriceType != "GP" {
		t.Errorf("PriceType = %q, want GP", res.PriceType)
	}
	if res.Notes[3].Value != "30.00" {
		t.Errorf("avk sum note = %q, want 30.00", res.Notes[3].Value)
	}
	if res.Notes[6].Value != "2" || res.Notes[7].Value != "2" {
		t.Errorf("FAM row count notes = %q/%q", res.Notes[6].Value, res.Notes[7].Value)
	}
	if res.Notes[8].Value != "1" || res.Notes[9].Value != "0" {
		t.Errorf("TM row count notes = %q/%q", res.Notes[8].Value, res.Notes[9].Value)
	}
}
