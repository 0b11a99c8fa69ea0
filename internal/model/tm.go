package model

// TM sheet: one row per dispensed package fragment, linked to FAM by
// vo_id. Charge number and position are reconstructed by the pipeline.

// TMHeaderMapping maps source headers to canonical field names.
var TMHeaderMapping = map[string]string{
	"VO-ID":                 "vo_id",
	"Chargen-Nr.":           "charge_nr",
	"Position/laufende Nr.": "position",
	"PZN":                   "pzn",
	"Bezeichnung":           "am_name",
	"Faktorenkennzeichen":   "factor_indicator",
	"Mengenfaktor":          "quantity_factor",
	"Preiskennzeichen":      "price_indicator",
	"Teilmengenpreis":       "partial_quantity_price",
	"Packungsgröße":         "package_size",
	"Mengeneinheit":         "unit_of_measurement",
	"Darreichungsform":      "presentation_form",
	"ATC-Code":              "atc_code",
	"ATC-Bezeichnung":       "atc_name",
}

// TMColumnOrder is the fixed source-header column order of the
// exported TM sheet.
var TMColumnOrder = []string{
	"VO-ID", "Chargen-Nr.", "Position/laufende Nr.", "PZN", "Bezeichnung",
	"Faktorenkennzeichen", "Mengenfaktor", "Preiskennzeichen", "Teilmengenpreis",
	"Packungsgröße", "Mengeneinheit", "Darreichungsform", "ATC-Code", "ATC-Bezeichnung",
}

// ReverseTMHeaderMapping maps canonical field names back to source headers.
var ReverseTMHeaderMapping = reverse(TMHeaderMapping)

// BotendienstPZN is the courier-service product code. Lines carrying
// it are not billable medication and are quarantined from TM.
const BotendienstPZN = "6461110"

// SpecialDeliveryPZN marks FAM lines whose prescriptions must also
// appear in the TM sheet (checked by the analyzer).
const SpecialDeliveryPZN = "9999100"
