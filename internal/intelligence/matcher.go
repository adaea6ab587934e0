package intelligence

import (
	"math"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/textproc"
)

// Default fallback bounds. Both are strict: a ratio equal to the bound
// is rejected.
const (
	DefaultLengthTolerance   = 0.2
	DefaultDistanceThreshold = 0.2
)

// Matcher answers free text by retrieving the closest known question from
// the dialogue index.
type Matcher struct {
	pipeline          *textproc.Pipeline
	index             domain.DialogueIndex
	LengthTolerance   float64
	DistanceThreshold float64
}

func NewMatcher(p *textproc.Pipeline, index domain.DialogueIndex) *Matcher {
	return &Matcher{
		pipeline:          p,
		index:             index,
		LengthTolerance:   DefaultLengthTolerance,
		DistanceThreshold: DefaultDistanceThreshold,
	}
}

// Match normalizes raw text and returns the answer of the closest
// question. ok is false when no candidate passes both bounds.
func (m *Matcher) Match(raw string) (string, bool) {
	return m.MatchNormalized(m.pipeline.Normalize(raw))
}

// MatchNormalized is Match for text that is already normalized.
//
// Candidates are gathered per distinct input word in first-occurrence
// order and are not deduplicated across words. A candidate qualifies when
// |len(input)-len(q)|/len(q) < LengthTolerance and
// EditDistance(input, q)/len(q) < DistanceThreshold, lengths in runes. The
// strictly smallest distance ratio wins, so the first candidate wins ties.
func (m *Matcher) MatchNormalized(normalized string) (string, bool) {
	inputLen := textproc.RuneLen(normalized)

	best := math.Inf(1)
	var answer string
	found := false
	for _, w := range textproc.UniqueWords(normalized) {
		for _, pair := range m.index[w] {
			qLen := textproc.RuneLen(pair.Question)
			if qLen == 0 {
				continue
			}
			if math.Abs(float64(inputLen-qLen))/float64(qLen) >= m.LengthTolerance {
				continue
			}
			ratio, _ := textproc.DistanceRatio(normalized, pair.Question)
			if ratio >= m.DistanceThreshold {
				continue
			}
			if ratio < best {
				best, answer, found = ratio, pair.Answer, true
			}
		}
	}
	return answer, found
}
