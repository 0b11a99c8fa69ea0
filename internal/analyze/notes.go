package analyze

import (
	"strconv"

	"github.com/dkrause/famrecon/internal/table"
)

// Note is one labeled fact on the notes sheet.
type Note struct {
	Label string
	Value string
}

// Results bundles the analyzer outputs the pipeline carries into the
// run summary.
type Results struct {
	PriceConsistency string
	PriceType        string
	AVKSum           float64
	DateFormat       string
	VoIDTMConsistent string
	Notes            []Note
}

// Run executes every analysis and assembles the notes sheet in its
// fixed declared order. Labels are the sheet labels of the source
// extracts.
func Run(rawFAM, fam, rawTM, tm *table.Table, rawDateColumn string, tolerance float64) Results {
	priceType := PriceType(fam)
	res := Results{
		PriceConsistency: PriceConsistency(fam, tolerance),
		PriceType:        priceType,
		AVKSum:           TotalAVKSum(fam, priceType),
		DateFormat:       DetectDateFormat(rawFAM, rawDateColumn),
		VoIDTMConsistent: VoIDTMConsistency(fam, tm),
	}

	res.Notes = []Note{
		{"… Versicherten-Pseudonyme stimmen mit Vorgänger-Datensatz überein", "Yes"},
		{"Preis konsistent innerhalb der Daten?", res.PriceConsistency},
		{"avk =", res.PriceType},
		{"avk Summe:", strconv.FormatFloat(res.AVKSum, 'f', 2, 64)},
		{"Datumsformat:", res.DateFormat},
		{"VO-ID & TM stimmig?", res.VoIDTMConsistent},
		{"Anzahl Zeilen FAM original:", strconv.Itoa(rawFAM.Len())},
		{"Anzahl Zeilen FAM aufbereitet:", strconv.Itoa(fam.Len())},
		{"Anzahl Zeilen TM original:", strconv.Itoa(rawTM.Len())},
		{"Anzahl Zeilen TM aufbereitet:", strconv.Itoa(tm.Len())},
	}
	return res
}
