// Package textproc holds the text preprocessing collaborators of the
// dialogue core: cleaning, spelling correction, lemmatization, entity
// extraction, sentiment scoring and edit distance. Everything here is pure
// and safe for concurrent use once constructed.
package textproc

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	disallowedRunes = regexp.MustCompile(`[^а-яёa-z0-9\-\s\v\p{Z}]`)
	whitespaceRuns  = regexp.MustCompile(`[\s\v\p{Z}]+`)
)

// Clean lowercases text, composes combining marks (so a decomposed "й"
// survives the filter), drops every character outside Cyrillic, Latin,
// digits, hyphen and whitespace, and collapses whitespace.
func Clean(text string) string {
	s := norm.NFC.String(text)
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = disallowedRunes.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
