// Package analyze derives dataset-level facts from the reconciled
// tables: price consistency, the GP/EP billing convention of the
// price column, the raw date format, and cross-sheet checks.
package analyze

import (
	"strconv"
	"strings"

	"github.com/dkrause/famrecon/internal/model"
	"github.com/dkrause/famrecon/internal/table"
)

// ratioEpsilon bounds what counts as "the same" unit price when
// comparing float ratios.
const ratioEpsilon = 1e-9

// priceRow is one usable (pzn, price, amount) observation.
type priceRow struct {
	pzn    string
	price  float64
	amount float64
}

// priceRows extracts the observations the price heuristics run on:
// rows where pzn, price, and amount are all present and amount > 0.
func priceRows(fam *table.Table) []priceRow {
	var out []priceRow
	for _, r := range fam.Rows {
		pzn := r.Get("pzn")
		if pzn == "" {
			continue
		}
		price, err1 := strconv.ParseFloat(r.Get("medicine_price"), 64)
		amount, err2 := strconv.ParseFloat(r.Get("amount"), 64)
		if err1 != nil || err2 != nil || amount <= 0 {
			continue
		}
		out = append(out, priceRow{pzn: pzn, price: price, amount: amount})
	}
	return out
}

func groupByPZN(rows []priceRow) map[string][]priceRow {
	groups := make(map[string][]priceRow)
	for _, r := range rows {
		groups[r.pzn] = append(groups[r.pzn], r)
	}
	return groups
}

// PriceConsistency checks whether the unit price of every product code
// stays within the tolerance fraction. Single pass, early exit on the
// first violating group.
func PriceConsistency(fam *table.Table, tolerance float64) string {
	for _, group := range groupByPZN(priceRows(fam)) {
		if len(group) < 2 {
			continue
		}
		min := group[0].price / group[0].amount
		max := min
		for _, r := range group[1:] {
			ratio := r.price / r.amount
			if ratio < min {
				min = ratio
			}
			if ratio > max {
				max = ratio
			}
		}
		if max > min*(1+tolerance) {
			return "No"
		}
	}
	return "Yes"
}

// PriceType infers whether the price column encodes a total price
// ("GP") or a unit price ("EP"). For each multi-row product group:
// varying price and varying amount with a constant price/amount ratio
// is evidence the price is a total explained by one true unit price;
// a varying ratio, or a constant price with varying amounts, is
// evidence of a unit price.
func PriceType(fam *table.Table) string {
	gpEvidence, epEvidence := 0, 0

	for _, group := range groupByPZN(priceRows(fam)) {
		if len(group) < 2 {
			continue
		}

		priceVaries := varies(group, func(r priceRow) float64 { return r.price })
		amountVaries := varies(group, func(r priceRow) float64 { return r.amount })

		switch {
		case priceVaries && amountVaries:
			if !varies(group, func(r priceRow) float64 { return r.price / r.amount }) {
				gpEvidence++
			} else {
				epEvidence++
			}
		case !priceVaries && amountVaries:
			epEvidence++
		}
	}

	if gpEvidence > epEvidence {
		return "GP"
	}
	return "EP"
}

func varies(group []priceRow, f func(priceRow) float64) bool {
	first := f(group[0])
	for _, r := range group[1:] {
		v := f(r)
		if v-first > ratioEpsilon || first-v > ratioEpsilon {
			return true
		}
	}
	return false
}

// TotalAVKSum sums the price column according to the inferred
// convention: already-total prices sum as-is, unit prices are
// multiplied by the quantity first.
func TotalAVKSum(fam *table.Table, priceType string) float64 {
	var sum float64
	for _, r := range fam.Rows {
		price, err1 := strconv.ParseFloat(r.Get("medicine_price"), 64)
		amount, err2 := strconv.ParseFloat(r.Get("amount"), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		if priceType == "EP" {
			sum += price * amount
		} else {
			sum += price
		}
	}
	return sum
}

// DetectDateFormat sniffs the raw, unnormalized prescription date
// column: the first populated entry of up to the first 50 values is
// classified by separator and year-token position.
func DetectDateFormat(rawFAM *table.Table, column string) string {
	found := false
	for _, c := range rawFAM.Columns {
		if c == column {
			found = true
			break
		}
	}
	if !found {
		return "N/A - Column '" + column + "' not found"
	}

	first := ""
	for i, r := range rawFAM.Rows {
		if i == 50 {
			break
		}
		if v := strings.TrimSpace(r.Get(column)); v != "" {
			first = v
			break
		}
	}
	if first == "" {
		return "No date entries found"
	}

	datePart := strings.SplitN(first, " ", 2)[0]
	switch {
	case strings.Contains(datePart, "."):
		parts := strings.Split(datePart, ".")
		if len(parts) == 3 {
			if len(parts[2]) == 4 {
				return "dd.mm.yyyy"
			}
			return "dd.mm.yy"
		}
	case strings.Contains(datePart, "-"):
		parts := strings.Split(datePart, "-")
		if len(parts) == 3 {
			if len(parts[0]) == 4 {
				return "yyyy-mm-dd"
			}
			return "dd-mm-yy"
		}
	}
	if len(datePart) == 8 && isAllDigits(datePart) {
		return "yyyymmdd"
	}
	return "Unknown"
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// VoIDTMConsistency checks that every prescription carrying the
// special delivery PZN in FAM also appears in the TM sheet.
func VoIDTMConsistency(fam, tm *table.Table) string {
	tmVoIDs := make(map[string]bool)
	for _, r := range tm.Rows {
		tmVoIDs[r.Get("vo_id")] = true
	}

	found := false
	for _, r := range fam.Rows {
		pzn := r.Get("pzn")
		if pzn != model.SpecialDeliveryPZN && pzn != "0"+model.SpecialDeliveryPZN {
			continue
		}
		found = true
		if !tmVoIDs[r.Get("vo_id")] {
			return "No"
		}
	}
	if !found {
		return "N/A - PZN 09999100 not found in FAM"
	}
	return "Yes"
}
