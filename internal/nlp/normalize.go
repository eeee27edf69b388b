// Package nlp contains the text normalisation applied to extracted résumé
// text before any matching.
package nlp

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}]+`)
	// Letters, digits, underscore, whitespace and the four punctuation marks
	// that carry meaning in skills and contact data survive.
	disallowedChar = regexp.MustCompile(`[^\p{L}\p{N}_\s\v\p{Z}\-.@+]`)
)

// Normalize lower-cases text, collapses whitespace runs into a single space
// and replaces characters outside the allow-list with a space. Stripping
// runs after the collapse, so removed punctuation can leave double spaces.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)
	text = strings.ToLower(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = disallowedChar.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
