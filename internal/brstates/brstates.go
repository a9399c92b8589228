// Package brstates resolves free-text Brazilian state names to their
// two-letter abbreviations.
package brstates

import "strings"

var stateMap = map[string]string{
	"acre":                "AC",
	"alagoas":             "AL",
	"amapa":               "AP",
	"amazonas":            "AM",
	"bahia":               "BA",
	"ceara":               "CE",
	"distrito federal":    "DF",
	"espirito santo":      "ES",
	"goias":               "GO",
	"maranhao":            "MA",
	"mato grosso":         "MT",
	"mato grosso do sul":  "MS",
	"minas gerais":        "MG",
	"para":                "PA",
	"paraiba":             "PB",
	"parana":              "PR",
	"pernambuco":          "PE",
	"piaui":               "PI",
	"rio de janeiro":      "RJ",
	"rio grande do norte": "RN",
	"rio grande do sul":   "RS",
	"rondonia":            "RO",
	"roraima":             "RR",
	"santa catarina":      "SC",
	"sao paulo":           "SP",
	"sergipe":             "SE",
	"tocantins":           "TO",
}

var validAbbreviations = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
	"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
	"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// accentReplacer maps the Portuguese diacritics that occur in state names
// to their unaccented equivalents.
var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "õ", "o", "ô", "o", "ö", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ç", "c", "ñ", "n",
)

// ToAbbreviation resolves a state name or abbreviation to the canonical
// two-letter code. Input that is already a valid abbreviation is returned
// upper-cased without a name lookup. Returns "" when the input does not
// resolve.
func ToAbbreviation(state string) string {
	state = strings.TrimSpace(state)
	if state == "" {
		return ""
	}

	upper := strings.ToUpper(state)
	if len(state) == 2 && isValidUpper(upper) {
		return upper
	}

	normalized := accentReplacer.Replace(strings.ToLower(state))
	return stateMap[normalized]
}

// IsValidAbbreviation reports whether s is one of the 27 state codes,
// ignoring case.
func IsValidAbbreviation(s string) bool {
	return isValidUpper(strings.ToUpper(s))
}

// FullName returns the lower-case state name for an abbreviation, or ""
// when the abbreviation is unknown.
func FullName(abbreviation string) string {
	abbreviation = strings.ToUpper(abbreviation)
	for name, code := range stateMap {
		if code == abbreviation {
			return name
		}
	}
	return ""
}

// AllAbbreviations returns the 27 state codes in their canonical order.
func AllAbbreviations() []string {
	out := make([]string, len(validAbbreviations))
	copy(out, validAbbreviations)
	return out
}

// All returns a copy of the name-to-abbreviation table.
func All() map[string]string {
	out := make(map[string]string, len(stateMap))
	for name, code := range stateMap {
		out[name] = code
	}
	return out
}

func isValidUpper(upper string) bool {
	for _, code := range validAbbreviations {
		if code == upper {
			return true
		}
	}
	return false
}
