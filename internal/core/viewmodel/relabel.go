package viewmodel

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// displayNames maps upstream enum codes to what the dashboard shows
var displayNames = map[string]string{
	"RECOMMEND":  "Recommended",
	"LIST":       "Picked from list",
	"TEAM":       "Team",
	"INDIVIDUAL": "Individual",
}

var titler = cases.Title(language.English)

// Relabel maps a known upstream code to its display label. Unknown codes fall
// back to title-cased words so a new enum value degrades to something readable
// instead of raw SHOUT_CASE
func Relabel(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	if code == strings.ToUpper(code) && strings.ContainsAny(code, "_ ") {
		return titler.String(strings.ToLower(strings.ReplaceAll(code, "_", " ")))
	}
	return code
}
