package normalize

import (
	"strings"
	"time"
)

// CanonicalDateLayout is the day-first form all dates are emitted in.
const CanonicalDateLayout = "02.01.2006"

// Fallback layouts for extracts that deviate from the canonical
// day-first form. Ambiguous layouts are interpreted day-first.
var dateLayouts = []string{
	CanonicalDateLayout,
	"2.1.2006",
	"02.01.06",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02-01-06",
	"02/01/2006",
	"2006/01/02",
	"20060102",
}

// Date parses a date value, canonical day-first layout first, then the
// fallback layouts. The result is accepted only when it lies within
// the rolling window [now - windowYears, now] and is emitted in
// dd.mm.yyyy form.
func Date(v string, now time.Time, windowYears int) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}

	var t time.Time
	ok := false
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t = parsed
			ok = true
			break
		}
	}
	if !ok {
		return ""
	}

	earliest := now.AddDate(-windowYears, 0, 0)
	if t.Before(earliest) || t.After(now) {
		return ""
	}
	return t.Format(CanonicalDateLayout)
}
