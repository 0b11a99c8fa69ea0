package normalize

import (
	"regexp"
	"strings"
)

// Doctorate-indicating keyword family. Order matters: the scan takes
// the first alternative matching at each position, exactly once per
// occurrence.
var doctoratePattern = regexp.MustCompile(`dr|doctor|mudr|md|mbbs|dott|doktor|medico`)

var profKeywords = []string{"prof", "professor"}
var pdKeywords = []string{"pd", "privatdozent", "priv"}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// DoctorTitle canonicalizes a free-text doctor title. The raw text is
// lower-cased with dots and spaces stripped, then scanned for the
// doctorate, professor, and adjunct-lecturer keyword families.
// Precedence: Prof > PD > plain doctorate; a double doctorate adds a
// second "Dr.". Unrecognized text is absent.
func DoctorTitle(v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}

	check := strings.ToLower(v)
	check = strings.ReplaceAll(check, ".", "")
	check = strings.ReplaceAll(check, " ", "")

	drCount := len(doctoratePattern.FindAllString(check, -1))

	switch {
	case containsAny(check, profKeywords):
		if drCount >= 2 {
			return "Prof. Dr. Dr."
		}
		return "Prof. Dr."
	case containsAny(check, pdKeywords):
		if drCount >= 2 {
			return "PD Dr. Dr."
		}
		return "PD Dr."
	case drCount >= 2:
		return "Dr. Dr."
	case drCount == 1:
		return "Dr."
	}
	return ""
}
