package textproc

import (
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

// SentimentScorer rates normalized text in [-1,1].
type SentimentScorer interface {
	Score(normalized string) float64
}

// LexiconScorer averages lexicon values over the words that matched.
type LexiconScorer struct {
	lexicon    map[string]float64
	lemmatizer Lemmatizer
}

// NewLexiconScorer builds a scorer. Each word is lemmatized again before
// lookup because lexicon terms are stored as lemmas.
func NewLexiconScorer(lexicon map[string]float64, l Lemmatizer) *LexiconScorer {
	if l == nil {
		l = identity{}
	}
	return &LexiconScorer{lexicon: lexicon, lemmatizer: l}
}

// Score returns 0 when no word matched.
func (s *LexiconScorer) Score(normalized string) float64 {
	var sum float64
	matched := 0
	for _, w := range strings.Fields(normalized) {
		if v, ok := s.lexicon[s.lemmatizer.Lemmatize(w)]; ok {
			sum += v
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return domain.ClampSentiment(sum / float64(matched))
}
