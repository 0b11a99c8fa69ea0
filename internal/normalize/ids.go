package normalize

import "strings"

// hasRepeatedDigit reports whether any digit occurs four or more times
// consecutively.
func hasRepeatedDigit(s string) bool {
	run := 0
	var prev byte
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == prev {
			run++
		} else {
			run = 1
		}
		if run >= 4 {
			return true
		}
		prev = s[i]
	}
	return false
}

// intPart strips a trailing ".0"-style decimal part that spreadsheet
// reads attach to numeric cells, then trims whitespace.
func intPart(v string) string {
	s := v
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// PLZ validates a German postal code: digits only, a 4-digit numeral
// gets a leading zero, and the result must be exactly 5 digits.
func PLZ(v string) string {
	s := intPart(v)
	if len(s) == 4 && isDigits(s) {
		s = "0" + s
	}
	if len(s) == 5 && isDigits(s) {
		return s
	}
	return ""
}

// IDNumber validates a numeric identifier (LANR, BSNR, doctor id):
// pure digits, at least minLen long, and no digit repeated four or
// more times in a row. The repetition rule weeds out placeholder
// values like "99999123".
func IDNumber(v string, minLen int) string {
	s := intPart(v)
	if !isDigits(s) {
		return ""
	}
	if len(s) < minLen {
		return ""
	}
	if hasRepeatedDigit(s) {
		return ""
	}
	return s
}

// NumericID accepts any non-empty pure-digit string, with spreadsheet
// decimal suffixes stripped. Used for PZN and prescription identifiers.
func NumericID(v string) string {
	s := intPart(v)
	if !isDigits(s) {
		return ""
	}
	return s
}
