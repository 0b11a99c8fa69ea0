// Package clean turns raw sheet tables into normalized canonical
// tables: headers are mapped to canonical names, unmapped columns are
// dropped, and every column runs through its field normalizer.
package clean

import (
	"strings"
	"time"

	"github.com/dkrause/famrecon/internal/kvlookup"
	"github.com/dkrause/famrecon/internal/model"
	"github.com/dkrause/famrecon/internal/normalize"
	"github.com/dkrause/famrecon/internal/table"
)

// remap builds a canonical table from a raw one: only mapped columns
// are kept, source row positions are preserved, and every cell is
// trimmed.
func remap(raw *table.Table, order []string, mapping map[string]string) *table.Table {
	out := table.New(model.CanonicalColumns(order, mapping)...)
	for _, r := range raw.Rows {
		cells := make(map[string]string, len(out.Columns))
		for src, canonical := range mapping {
			cells[canonical] = strings.TrimSpace(r.Get(src))
		}
		out.Append(r.Source, cells)
	}
	return out
}

// FAM normalizes the raw FAM sheet. now anchors the prescription date
// window; the resolver fills the KV district from the district name or
// the doctor's postal code.
func FAM(raw *table.Table, kv *kvlookup.Resolver, now time.Time, windowYears int) *table.Table {
	t := remap(raw, model.FAMColumnOrder, model.FAMHeaderMapping)
	splitFullNames(t)

	t.Apply("medicine_name", normalize.MedicineName)
	t.Apply("medicine_price", normalize.PriceCell)
	t.Apply("amount", normalize.Quantity)
	t.Apply("ihpe_units", normalize.WholeNumber)
	t.Apply("prescription_date", func(v string) string { return normalize.Date(v, now, windowYears) })
	t.Apply("billing_date", func(v string) string { return normalize.Date(v, now, windowYears) })

	t.Apply("doctor_title", normalize.DoctorTitle)
	t.Apply("doctor_first_name", normalize.Name)
	t.Apply("doctor_last_name", normalize.Name)
	t.Apply("doctor_street", normalize.Street)
	t.Apply("pharmacy_street", normalize.Street)
	t.Apply("doctor_postcode", normalize.PLZ)
	t.Apply("pharmacy_postcode", normalize.PLZ)
	t.Apply("doctor_city", normalize.City)
	t.Apply("pharmacy_city", normalize.City)

	t.Apply("pharmacy_name", normalize.PharmacyName)
	t.Apply("pharmacy_owner", normalize.PharmacyOwner)
	t.Apply("bs_name", normalize.BSName)
	t.Apply("doctor_specialization", normalize.DoctorSpecialization)

	t.Apply("pzn", normalize.NumericID)
	t.Apply("receipt_id", normalize.NumericID)
	t.Apply("vo_id", normalize.NumericID)
	t.Apply("doctor_phone", normalize.NumericID)
	t.Apply("lanr", func(v string) string { return normalize.IDNumber(v, 6) })
	t.Apply("temp_lanr", func(v string) string { return normalize.IDNumber(v, 6) })
	t.Apply("doctor_id", func(v string) string { return normalize.IDNumber(v, 6) })
	t.Apply("bs_nr", func(v string) string { return normalize.IDNumber(v, 9) })

	resolveKVDistrict(t, kv)
	syncIdentifiers(t)
	return t
}

// splitFullNames fills the three doctor name columns from the combined
// name field when an extract delivers only the one column. Runs before
// the normalizers so the split parts go through DoctorTitle and Name
// like natively split values.
func splitFullNames(t *table.Table) {
	for i := range t.Rows {
		r := &t.Rows[i]
		full := r.Cells["doctor_full_name"]
		if full == "" || r.Cells["doctor_first_name"] != "" || r.Cells["doctor_last_name"] != "" {
			continue
		}
		parts := normalize.SplitFullName(full)
		if r.Cells["doctor_title"] == "" {
			r.Cells["doctor_title"] = parts.Title
		}
		r.Cells["doctor_first_name"] = parts.First
		r.Cells["doctor_last_name"] = parts.Last
	}
}

// resolveKVDistrict replaces the district column with its numeric KV
// code: the spelled-out name first, the doctor's postal code as
// fallback, then the 0..17 range check.
func resolveKVDistrict(t *table.Table, kv *kvlookup.Resolver) {
	for i := range t.Rows {
		r := &t.Rows[i]
		code := kv.Resolve(r.Cells["kv_district"], r.Cells["doctor_postcode"])
		r.Cells["kv_district"] = normalize.KVDistrictNumber(code)
	}
}

// syncIdentifiers fills receipt_id and vo_id from each other when
// exactly one is missing. Rows missing both are left for the
// rejection rules.
func syncIdentifiers(t *table.Table) {
	for i := range t.Rows {
		r := &t.Rows[i]
		receipt, vo := r.Cells["receipt_id"], r.Cells["vo_id"]
		switch {
		case receipt == "" && vo != "":
			r.Cells["receipt_id"] = vo
		case receipt != "" && vo == "":
			r.Cells["vo_id"] = receipt
		}
	}
}
