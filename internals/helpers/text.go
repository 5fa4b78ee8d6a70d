package helper

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims and NFC-normalises user supplied text so that
// visually identical names and search terms compare equal.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// EscapeLike escapes LIKE wildcards so the term matches literally.
// Use together with ESCAPE '\'.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
