package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	multiSpace    = regexp.MustCompile(`\s+`)
	streetSuffix  = regexp.MustCompile(`(?i)(strasse|straße|trasse)\b`)
	digitThenCase = regexp.MustCompile(`(\d)([A-ZÄÖÜ])`)
)

func titleCase(s string) string {
	return cases.Title(language.German).String(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Name cleans a person name: collapses internal whitespace, rejects
// pure-numeral strings, and title-cases the rest.
func Name(v string) string {
	s := multiSpace.ReplaceAllString(strings.TrimSpace(v), " ")
	if s == "" || isDigits(s) {
		return ""
	}
	return titleCase(s)
}

// MedicineName title-cases a medicine name. Blank input stays absent.
func MedicineName(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	return titleCase(s)
}

// City cleans a city name: rejects pure-numeral strings, title-cases.
func City(v string) string {
	s := strings.TrimSpace(v)
	if s == "" || isDigits(s) {
		return ""
	}
	return titleCase(s)
}

// Street cleans a street name. Spelled-out "Strasse"/"Straße" endings
// are shortened to "str." and house-number suffixes keep a lowercase
// letter ("1b" stays "1b", never "1B").
func Street(v string) string {
	s := multiSpace.ReplaceAllString(strings.TrimSpace(v), " ")
	if s == "" || isDigits(s) {
		return ""
	}
	s = streetSuffix.ReplaceAllString(s, "str.")
	s = titleCase(s)
	return digitThenCase.ReplaceAllStringFunc(s, strings.ToLower)
}
