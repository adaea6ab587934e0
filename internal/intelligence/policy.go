package intelligence

import (
	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/textproc"
)

// DefaultConfirmThreshold is the largest edit-distance ratio at which an
// example still confirms a predicted intent.
const DefaultConfirmThreshold = 0.5

// ConfirmationPolicy decides whether a predicted intent is trusted. A
// prediction counts only when the input is close to at least one known
// example of that intent.
type ConfirmationPolicy struct {
	Threshold float64
	corpus    *domain.IntentCorpus
}

func NewConfirmationPolicy(corpus *domain.IntentCorpus, threshold float64) ConfirmationPolicy {
	return ConfirmationPolicy{Threshold: threshold, corpus: corpus}
}

// Confirms reports whether some normalized example e of intent satisfies
// EditDistance(normalized, e)/len(e) <= Threshold. Empty examples never
// confirm; neither do unknown labels.
func (p ConfirmationPolicy) Confirms(intent domain.Intent, normalized string) bool {
	entry, ok := p.corpus.Entry(intent)
	if !ok {
		return false
	}
	for _, example := range entry.NormalizedExamples {
		if ratio, ok := textproc.DistanceRatio(normalized, example); ok && ratio <= p.Threshold {
			return true
		}
	}
	return false
}
