package textproc

import "strings"

// Corrector fixes spelling in already-cleaned text.
type Corrector interface {
	Correct(text string) string
}

// Lemmatizer reduces every word of cleaned text to its dictionary form.
type Lemmatizer interface {
	Lemmatize(text string) string
}

type identity struct{}

func (identity) Correct(text string) string   { return text }
func (identity) Lemmatize(text string) string { return text }

// Pipeline chains clean → correct → lemmatize. This is the single
// normalization used for user input, intent examples, dialogue questions
// and menu names, so all comparisons happen in the same space.
type Pipeline struct {
	corrector  Corrector
	lemmatizer Lemmatizer
}

// NewPipeline builds a pipeline; nil collaborators are identities.
func NewPipeline(c Corrector, l Lemmatizer) *Pipeline {
	if c == nil {
		c = identity{}
	}
	if l == nil {
		l = identity{}
	}
	return &Pipeline{corrector: c, lemmatizer: l}
}

func (p *Pipeline) Normalize(text string) string {
	return p.lemmatizer.Lemmatize(p.corrector.Correct(Clean(text)))
}

// Lemmatize exposes the pipeline's lemmatizer for single words.
func (p *Pipeline) Lemmatize(text string) string {
	return p.lemmatizer.Lemmatize(text)
}

// UniqueWords splits normalized text on single spaces and drops repeats,
// keeping first-occurrence order.
func UniqueWords(normalized string) []string {
	if normalized == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, w := range strings.Split(normalized, " ") {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
