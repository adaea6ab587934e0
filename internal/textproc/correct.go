package textproc

import (
	"sort"
	"strings"
)

// minCorrectableLen keeps short words (prepositions, particles) untouched;
// at distance 1 they collide with too many vocabulary words.
const minCorrectableLen = 4

// VocabularyCorrector fixes single-character typos against a known word
// list. Known words and words with no neighbour at distance 1 pass through.
type VocabularyCorrector struct {
	known map[string]struct{}
	words []string // sorted, for a deterministic choice of neighbour
}

// NewVocabularyCorrector builds a corrector from words. An empty list gives
// an identity corrector.
func NewVocabularyCorrector(words []string) *VocabularyCorrector {
	c := &VocabularyCorrector{known: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, dup := c.known[w]; dup {
			continue
		}
		c.known[w] = struct{}{}
		c.words = append(c.words, w)
	}
	sort.Strings(c.words)
	return c
}

func (c *VocabularyCorrector) Correct(text string) string {
	if c == nil || len(c.words) == 0 {
		return text
	}
	fields := strings.Fields(text)
	for i, w := range fields {
		fields[i] = c.correctWord(w)
	}
	return strings.Join(fields, " ")
}

func (c *VocabularyCorrector) correctWord(w string) string {
	if _, ok := c.known[w]; ok {
		return w
	}
	n := RuneLen(w)
	if n < minCorrectableLen {
		return w
	}
	for _, cand := range c.words {
		m := RuneLen(cand)
		if m < n-1 || m > n+1 {
			continue
		}
		if EditDistance(w, cand) == 1 {
			return cand
		}
	}
	return w
}
