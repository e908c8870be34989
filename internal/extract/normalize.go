package extract

import (
	"regexp"
	"strings"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// clean applies the case-preserving part of normalization: collapses any run
// of whitespace (including line breaks) into a single space and repairs the
// two most common OCR confusions, ";" for ":" and "|" for "I".
// Line structure does not survive this; the line scanner works on raw text.
func clean(s string) string {
	if s == "" {
		return s
	}
	s = reWhitespace.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, ";", ":")
	s = strings.ReplaceAll(s, "|", "I")
	return s
}

// Normalize canonicalizes raw OCR text for pattern matching: whitespace runs
// collapse to one space, semicolons become colons, vertical bars become "I",
// and the result is lowercased. Pure and total; idempotent.
func Normalize(s string) string {
	return strings.ToLower(clean(s))
}
