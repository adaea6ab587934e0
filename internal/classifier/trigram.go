package classifier

import (
	"context"
	"math"
	"sort"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

type vector map[string]float64

// Trigram is a nearest-centroid classifier over character 3-gram TF-IDF
// vectors. It is immutable after Train and safe for concurrent use.
type Trigram struct {
	idf       map[string]float64
	labels    []domain.Intent
	centroids map[domain.Intent]vector
}

// Train builds a classifier from the normalized examples of every intent.
// Intents without examples get no centroid and are never predicted.
func Train(corpus *domain.IntentCorpus) *Trigram {
	labels := make([]domain.Intent, 0, len(corpus.Intents))
	for label, entry := range corpus.Intents {
		if len(entry.NormalizedExamples) > 0 {
			labels = append(labels, label)
		}
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	df := make(map[string]int)
	docs := 0
	for _, label := range labels {
		for _, ex := range corpus.Intents[label].NormalizedExamples {
			docs++
			for g := range termCounts(ex) {
				df[g]++
			}
		}
	}
	idf := make(map[string]float64, len(df))
	for g, n := range df {
		idf[g] = math.Log(float64(1+docs)/float64(1+n)) + 1
	}

	t := &Trigram{idf: idf, labels: labels, centroids: make(map[domain.Intent]vector, len(labels))}
	for _, label := range labels {
		examples := corpus.Intents[label].NormalizedExamples
		centroid := make(vector)
		for _, ex := range examples {
			for g, w := range t.vectorize(ex) {
				centroid[g] += w / float64(len(examples))
			}
		}
		t.centroids[label] = normalize(centroid)
	}
	return t
}

// Predict returns the label whose centroid is closest by cosine
// similarity. Ties, including an all-zero input, go to the first label in
// sorted order. With no trained labels it returns domain.IntentNone.
func (t *Trigram) Predict(_ context.Context, normalized string) domain.Intent {
	if len(t.labels) == 0 {
		return domain.IntentNone
	}
	v := t.vectorize(normalized)
	best := t.labels[0]
	bestScore := dot(v, t.centroids[best])
	for _, label := range t.labels[1:] {
		if s := dot(v, t.centroids[label]); s > bestScore {
			best, bestScore = label, s
		}
	}
	return best
}

// Labels lists the intents the classifier can predict.
func (t *Trigram) Labels() []domain.Intent {
	out := make([]domain.Intent, len(t.labels))
	copy(out, t.labels)
	return out
}

// vectorize weighs trigram counts by idf; grams unseen in training drop out.
func (t *Trigram) vectorize(text string) vector {
	v := make(vector)
	for g, n := range termCounts(text) {
		if w, ok := t.idf[g]; ok {
			v[g] = float64(n) * w
		}
	}
	return normalize(v)
}

// termCounts counts rune trigrams of the text padded with one space on
// each side, so one- and two-letter words still produce grams.
func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	if text == "" {
		return counts
	}
	r := []rune(" " + text + " ")
	for i := 0; i+3 <= len(r); i++ {
		counts[string(r[i:i+3])]++
	}
	return counts
}

func normalize(v vector) vector {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	if sum == 0 {
		return v
	}
	n := math.Sqrt(sum)
	for g := range v {
		v[g] /= n
	}
	return v
}

func dot(a, b vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var s float64
	for g, w := range a {
		s += w * b[g]
	}
	return s
}
