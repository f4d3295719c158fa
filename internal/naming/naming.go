// Package naming provides Go identifier helpers for generated accessor code.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser uppercases the leading letter of each word without touching
// the rest (strings.Title is deprecated; cases.NoLower preserves interior
// casing like "fieldNames" -> "FieldNames").
var titleCaser = cases.Title(language.English, cases.NoLower)

// Exported returns s with its first letter uppercased, suitable for use as
// an exported Go identifier. Non-letter leading characters are returned
// unchanged.
func Exported(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return s
	}
	return titleCaser.String(string(r)) + s[size:]
}

// ExportedIdent converts an arbitrary name to an exported Go identifier.
// Characters that cannot appear in an identifier act as separators and
// capitalize the following letter.
// Example: "field_names" -> "FieldNames", "raw names" -> "RawNames".
func ExportedIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	capitalizeNext := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext && unicode.IsLetter(r) {
			b.WriteString(titleCaser.String(string(r)))
		} else {
			b.WriteRune(r)
		}
		capitalizeNext = false
	}
	return b.String()
}

// IsValidIdent reports whether s is a syntactically valid Go identifier.
func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
