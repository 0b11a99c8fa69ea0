package normalize

import "strings"

// FullName is a combined doctor name field split into its parts. The
// parts are raw; callers run DoctorTitle and Name on them afterwards.
type FullName struct {
	Title string
	First string
	Last  string
}

// Tokens recognized as title fragments inside combined name fields,
// compared with dots and hyphens stripped.
var titleTokens = map[string]bool{
	"dr": true, "prof": true, "professor": true, "med": true,
	"priv": true, "privdoz": true, "privatdozent": true, "pd": true,
	"doz": true, "habil": true, "univ": true, "mudr": true, "md": true,
	"dott": true,
}

// Surname particles that bind to the token following them.
var nameParticles = map[string]bool{
	"von": true, "van": true, "de": true, "der": true, "den": true,
	"zu": true, "zur": true, "vom": true, "ter": true, "da": true,
	"di": true,
}

func isTitleToken(tok string) bool {
	s := strings.ToLower(tok)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "-", "")
	return titleTokens[s]
}

// SplitFullName splits a combined name field into title, first name,
// and last name. Three layouts occur in the extracts: "Title First
// Last" with optional surname particles ("Prof. Dr. Max von der
// Lippe"), "Last, First", and "Last Title First" where the title sits
// between the names ("Abdelrahim Dr. med. Omar").
func SplitFullName(v string) FullName {
	s := multiSpace.ReplaceAllString(strings.TrimSpace(v), " ")
	if s == "" {
		return FullName{}
	}

	if i := strings.IndexByte(s, ','); i >= 0 {
		last := strings.TrimSpace(s[:i])
		rest := strings.Fields(s[i+1:])
		var titles []string
		for len(rest) > 0 && isTitleToken(rest[0]) {
			titles = append(titles, rest[0])
			rest = rest[1:]
		}
		return FullName{
			Title: strings.Join(titles, " "),
			First: strings.Join(rest, " "),
			Last:  last,
		}
	}

	tokens := strings.Fields(s)

	var titles []string
	for len(tokens) > 0 && isTitleToken(tokens[0]) {
		titles = append(titles, tokens[0])
		tokens = tokens[1:]
	}

	// A title after the first remaining token marks the
	// "Last Title First" layout.
	for i, tok := range tokens {
		if i == 0 || !isTitleToken(tok) {
			continue
		}
		j := i
		for j < len(tokens) && isTitleToken(tokens[j]) {
			titles = append(titles, tokens[j])
			j++
		}
		return FullName{
			Title: strings.Join(titles, " "),
			First: strings.Join(tokens[j:], " "),
			Last:  strings.Join(tokens[:i], " "),
		}
	}

	title := strings.Join(titles, " ")
	switch len(tokens) {
	case 0:
		return FullName{Title: title}
	case 1:
		return FullName{Title: title, First: tokens[0]}
	}

	lastStart := len(tokens) - 1
	for lastStart > 1 && nameParticles[strings.ToLower(tokens[lastStart-1])] {
		lastStart--
	}
	return FullName{
		Title: title,
		First: strings.Join(tokens[:lastStart], " "),
		Last:  strings.Join(tokens[lastStart:], " "),
	}
}
