package model

// FAM sheet: one row per billed prescription line (patient, doctor,
// pharmacy, price, quantity). Source headers are the German export
// headers; canonical names are what the pipeline works with.

// FAMHeaderMapping maps source headers to canonical field names.
// Exact key match; columns not listed here are dropped on import.
// "arzt-name" is a combined-name variant some extracts deliver instead
// of the three split doctor name columns; it is consumed during
// cleaning and never exported (not part of FAMColumnOrder).
var FAMHeaderMapping = map[string]string{
	"kasse":                         "health_insurance_company",
	"patnr":                         "patient_nr",
	"pzn":                           "pzn",
	"am-name":                       "medicine_name",
	"avk":                           "medicine_price",
	"vo-datum":                      "prescription_date",
	"anzahl":                        "amount",
	"lanr":                          "lanr",
	"arzt-titel":                    "doctor_title",
	"arzt-name":                     "doctor_full_name",
	"arzt-vorname":                  "doctor_first_name",
	"arzt-nachname":                 "doctor_last_name",
	"arzt-str":                      "doctor_street",
	"arzt-plz":                      "doctor_postcode",
	"arzt-ort":                      "doctor_city",
	"apo-name":                      "pharmacy_name",
	"apo-str":                       "pharmacy_street",
	"apo-plz":                       "pharmacy_postcode",
	"apo-ort":                       "pharmacy_city",
	"bsnr":                          "bs_nr",
	"betriebsbez.":                  "bs_name",
	"arzt-tel":                      "doctor_phone",
	"kv-bezirk":                     "kv_district",
	"FA-Bezeichnung":                "doctor_specialization",
	"rolle":                         "role",
	"abrdatum":                      "billing_date",
	"lanrtmp":                       "temp_lanr",
	"belegnr":                       "receipt_id",
	"arzt-id":                       "doctor_id",
	"apo-inhaber":                   "pharmacy_owner",
	"applikationsfertige Einheiten": "ihpe_units",
	"vo-id":                         "vo_id",
}

// FAMColumnOrder is the fixed source-header column order of the
// exported FAM sheet.
var FAMColumnOrder = []string{
	"kasse", "patnr", "pzn", "am-name", "avk", "vo-datum", "anzahl", "lanr",
	"arzt-titel", "arzt-vorname", "arzt-nachname", "arzt-str", "arzt-plz",
	"arzt-ort", "apo-name", "apo-plz", "apo-ort", "bsnr", "betriebsbez.",
	"apo-str", "arzt-tel", "kv-bezirk", "FA-Bezeichnung", "rolle", "abrdatum",
	"lanrtmp", "belegnr", "arzt-id", "apo-inhaber",
	"applikationsfertige Einheiten", "vo-id",
}

// ReverseFAMHeaderMapping maps canonical field names back to source
// headers for export.
var ReverseFAMHeaderMapping = reverse(FAMHeaderMapping)

func reverse(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// CanonicalColumns returns the canonical column names in the order of
// the given source-header order.
func CanonicalColumns(order []string, mapping map[string]string) []string {
	out := make([]string, 0, len(order))
	for _, h := range order {
		if c, ok := mapping[h]; ok {
			out = append(out, c)
		}
	}
	return out
}
