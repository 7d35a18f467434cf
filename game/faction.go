package game

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeFaction returns the canonical form of a faction: surrounding spaces
// trimmed and upper-cased, so "Verde " and "VERDE" compare equal.
func NormalizeFaction(faction string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(faction))
}
