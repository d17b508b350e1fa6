package label

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title upper-cases the first letter of every word and lower-cases the rest.
//
//	Title("lead vocals") // "Lead Vocals"
func Title(s string) string {
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.English).String(s)
}
