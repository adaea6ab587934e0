package domain

// IntentEntry holds the examples and canned responses for one intent.
// NormalizedExamples is parallel to Examples and computed once at load.
type IntentEntry struct {
	Examples           []string
	NormalizedExamples []string
	Responses          []string
}

// IntentCorpus is the loaded intent dataset plus the shared failure pool.
type IntentCorpus struct {
	Intents        map[Intent]IntentEntry
	FailurePhrases []string
}

// Entry returns the entry for an intent; ok is false for unknown labels.
func (c *IntentCorpus) Entry(i Intent) (IntentEntry, bool) {
	if c == nil {
		return IntentEntry{}, false
	}
	e, ok := c.Intents[i]
	return e, ok
}

// MaxPairsPerWord caps the candidates stored under one dialogue index word.
const MaxPairsPerWord = 1000

// DialoguePair is a retrieval candidate: the question is stored normalized,
// the answer raw.
type DialoguePair struct {
	Question string
	Answer   string
}

// DialogueIndex maps a normalized word to candidate pairs sorted by
// ascending question length.
type DialogueIndex map[string][]DialoguePair
