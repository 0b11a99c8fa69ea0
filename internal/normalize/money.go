package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Price parses a German-formatted price ("1.234,56€"): the euro glyph
// is stripped, "." is the thousands separator and "," the decimal
// separator. Only strictly positive results are accepted.
func Price(v string) (float64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(v, "€", ""))
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}

// PriceCell returns the canonical two-decimal cell form of a price, or
// "" when the raw value is not a valid positive price.
func PriceCell(v string) string {
	f, ok := Price(v)
	if !ok {
		return ""
	}
	return FormatPrice(f)
}

// FormatPrice renders a price in canonical cell form.
func FormatPrice(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// PartialQuantityPrice parses a plain decimal price and rounds it to
// two places. Unlike Price it keeps zero and negative values; the
// rejection rules decide what to do with them.
func PartialQuantityPrice(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	return FormatPrice(math.Round(f*100) / 100)
}
