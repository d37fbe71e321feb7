package templates

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first character of name and leaves the rest
// unchanged. Full case mapping applies, so "ß" becomes "SS".
// An empty name or one starting with invalid UTF-8 is returned as is.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return name
	}

	// Casers carry state and must not be shared between goroutines.
	return cases.Upper(language.Und).String(name[:size]) + name[size:]
}
