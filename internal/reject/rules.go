package reject

import (
	"strconv"
	"strings"

	"github.com/dkrause/famrecon/internal/model"
	"github.com/dkrause/famrecon/internal/table"
)

// FAMRules returns the ordered FAM rule set, evaluated against the
// normalized view. Reasons are the report labels of the source system.
func FAMRules() []Rule {
	return []Rule{
		{
			Reason: "Essentielle Spalten (patnr, pzn, vo-datum, anzahl) sind unvollständig",
			Match: func(r table.Row) bool {
				return r.Empty("patient_nr") || r.Empty("pzn") ||
					r.Empty("prescription_date") || r.Empty("amount")
			},
		},
		{
			// The price normalizer already nulls non-positive values,
			// so absence covers both cases here.
			Reason: "avk ist ungültig (fehlt oder <= 0)",
			Match: func(r table.Row) bool {
				return r.Empty("medicine_price")
			},
		},
		{
			Reason: "belegnr und vo_id fehlen beide",
			Match: func(r table.Row) bool {
				return r.Empty("receipt_id") && r.Empty("vo_id")
			},
		},
	}
}

// TMRawRules returns the TM rules that must see raw values: the
// courier PZN check runs before normalization can alter the code.
func TMRawRules() []Rule {
	return []Rule{
		{
			Reason: "Botendienst-PZN (06461110)",
			Match: func(r table.Row) bool {
				pzn := strings.TrimSpace(r.Get("PZN"))
				return pzn == model.BotendienstPZN || pzn == "0"+model.BotendienstPZN
			},
		},
	}
}

// TMRules returns the TM rules evaluated against the normalized view.
func TMRules() []Rule {
	return []Rule{
		{
			Reason: "Teilmengenpreis ist ungültig (fehlt oder <= 0)",
			Match: func(r table.Row) bool {
				v := r.Get("partial_quantity_price")
				if v == "" {
					return true
				}
				f, err := strconv.ParseFloat(v, 64)
				return err != nil || f <= 0
			},
		},
		{
			Reason: "Position/laufende Nr. ist ungültig",
			Match: func(r table.Row) bool {
				return r.Empty("position")
			},
		},
	}
}
