package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Quantity truncates to an integer and accepts only values >= 1.
func Quantity(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	n := int64(f)
	if n < 1 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

// WholeNumber truncates to an integer and accepts only values >= 0.
// Used for ready-to-administer unit counts.
func WholeNumber(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	n := int64(f)
	if n < 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

// KVDistrictNumber accepts only whole numbers in the 0..17 KV code range.
func KVDistrictNumber(v string) string {
	s := WholeNumber(v)
	if s == "" {
		return ""
	}
	n, _ := strconv.ParseInt(s, 10, 64)
	if n > 17 {
		return ""
	}
	return s
}

// IntCell validates a position or indicator value: the integer part
// must be purely numeric. Returns the canonical integer form.
func IntCell(v string) string {
	s := strings.TrimSpace(v)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	if !isDigits(s) {
		return ""
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

// QuantityFactors normalizes the TM quantity factor column as a whole.
// Some extracts encode the factor in promille; when any value exceeds
// the threshold of 100 the entire column is divided by 1000. Values
// are rounded to four decimals.
func QuantityFactors(vals []string) []string {
	parsed := make([]float64, len(vals))
	valid := make([]bool, len(vals))
	promille := false
	for i, v := range vals {
		s := strings.TrimSpace(v)
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		parsed[i] = f
		valid[i] = true
		if f > 100 {
			promille = true
		}
	}

	out := make([]string, len(vals))
	for i := range vals {
		if !valid[i] {
			continue
		}
		f := parsed[i]
		if promille {
			f /= 1000
		}
		f = math.Round(f*10000) / 10000
		out[i] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return out
}
