package normalize

import (
	"regexp"
	"strings"
)

// Boilerplate keyword tables taken from the billing extracts: business
// entity suffixes, organizational tags, and known junk values. All
// immutable, compiled once at init.

var PharmacyNameKeywords = []string{
	"e.K.", "e. K.", "e.K ", "e. K", "B.V.", "PE", "Filiale", "e.Kfm",
	"e. Kfm", "e.Kfr.", "Zytostatika", "eK", "OHG", "oHG", "gGmbH",
	"GmbH", "Inh.", "Inhaber",
}

var BSNameKeywords = []string{
	"gGmbH", "GmbH", "e.V.", "e. V.", "e V", "e.V", "eV", "B.V.", "OHG",
	"e.Kfm", "SAPV-Team", "e. G.", "gKAöR", "§117 SGBV", "eG", "&Co.KG",
	"& Co.KG", "mbH", "+ Co.KG", "GbR", "(Entlassungsmanagement 750200598)",
	"G:", ",Entlassungsmanagement", "Entlassungsmanagement", "UG", "NULL", "#",
	"N/A", "Pseudo Pseudo-Arzt", "Pseudoarzt KH-Entlassungsmanagement", "#NV",
	"ungültiger Wert", "et. al.",
}

var DoctorSpecializationKeywords = []string{
	"(Facharzt)", "(Hausarzt)", "Hausarzt", "Facharzt",
	"Praktischer Arzt / Hausarzt", "F: ", "0", "unbekannt", "keine Angaben",
	"Zur freien Verfügung für die KVen (Notfallärzte etc.)",
	"Zur freien Verfügung für die KVen (Notfallärzte etc)",
	"Zur freien Verfügung für die KVen", "Sonstige Ärzte", "00", "k.A.",
	"XXX", "NULL", "nicht referenziert",
	"KV-interne Kennzeichnung, z.B. Notfallärzte",
	"Nicht zugeordnet", "ungültiger Wert", "zur freien Verfügung",
	"ungültige Facharztgruppe", "(SP)", "KV-interne Vergabe", " / ",
}

var PharmacyOwnerKeywords = []string{
	"gGmbH", "GmbH", "e.V.", "e. V.",
	"e V", "e.V", "eV", "B.V.", "OHG", "oHG", "e.Kfm",
	"e. Kfm", "e.Kfr.", "#", "e.K.", "e. K.", "e.K",
	"Inh.", "Inhaber",
}

var (
	pharmacyNamePattern         = keywordPattern(PharmacyNameKeywords)
	bsNamePattern               = keywordPattern(BSNameKeywords)
	doctorSpecializationPattern = keywordPattern(DoctorSpecializationKeywords)
	pharmacyOwnerPattern        = keywordPattern(PharmacyOwnerKeywords)
)

func keywordPattern(keywords []string) *regexp.Regexp {
	parts := make([]string, len(keywords))
	for i, kw := range keywords {
		parts[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`(?i)` + strings.Join(parts, "|"))
}

// RemoveKeywords strips every occurrence of the pattern's keywords,
// collapses the remaining whitespace, and trims leftover separator
// punctuation. Pure-numeral input is junk and becomes absent.
func RemoveKeywords(v string, pattern *regexp.Regexp) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	if isDigits(s) {
		return ""
	}
	s = pattern.ReplaceAllString(v, "")
	s = multiSpace.ReplaceAllString(strings.TrimSpace(s), " ")
	return strings.Trim(s, " ,-")
}

// PharmacyName strips business-entity suffixes from a pharmacy name.
func PharmacyName(v string) string {
	return RemoveKeywords(v, pharmacyNamePattern)
}

// BSName strips organizational attachments from an operating-site name.
func BSName(v string) string {
	return RemoveKeywords(v, bsNamePattern)
}

// DoctorSpecialization strips boilerplate from a specialty label and
// title-cases the remainder.
func DoctorSpecialization(v string) string {
	s := RemoveKeywords(v, doctorSpecializationPattern)
	if s == "" {
		return ""
	}
	return titleCase(s)
}

// PharmacyOwner strips business-entity suffixes from an owner name.
func PharmacyOwner(v string) string {
	return RemoveKeywords(v, pharmacyOwnerPattern)
}
