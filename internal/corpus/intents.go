package corpus

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/textproc"
	"gopkg.in/yaml.v3"
)

func parseIntents(data []byte) (*intentFile, error) {
	var f intentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Source: IntentsFile, Code: ErrCodeMalformed, Message: "parsing intents", Err: err}
	}
	return &f, nil
}

// ExpandExamples replaces the <DISH> placeholder with every dish key, in
// catalog order. Examples without the placeholder pass through.
func ExpandExamples(examples []string, dishKeys []string) []string {
	out := make([]string, 0, len(examples))
	for _, ex := range examples {
		if !strings.Contains(ex, dishPlaceholder) {
			out = append(out, ex)
			continue
		}
		for _, dish := range dishKeys {
			out = append(out, strings.ReplaceAll(ex, dishPlaceholder, dish))
		}
	}
	return out
}

// buildIntentCorpus validates labels and pools, expands dish templates and
// normalizes every example once. Every known intent must be present with a
// non-empty response pool, and the failure pool must be non-empty, because
// response selection has no "nothing to say" case.
func buildIntentCorpus(f *intentFile, dishKeys []string, p *textproc.Pipeline) (*domain.IntentCorpus, error) {
	var errs []error

	labels := make([]string, 0, len(f.Intents))
	for label := range f.Intents {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	corpus := &domain.IntentCorpus{Intents: make(map[domain.Intent]domain.IntentEntry, len(f.Intents))}
	for _, label := range labels {
		rec := f.Intents[label]
		intent := domain.Intent(label)
		if !intent.IsValid() {
			errs = append(errs, fmt.Errorf("unknown intent %q", label))
			continue
		}
		if len(rec.Responses) == 0 {
			errs = append(errs, fmt.Errorf("intent %q: responses must not be empty", label))
		}
		examples := ExpandExamples(rec.Examples, dishKeys)
		normalized := make([]string, len(examples))
		for i, ex := range examples {
			normalized[i] = p.Normalize(ex)
		}
		corpus.Intents[intent] = domain.IntentEntry{
			Examples:           examples,
			NormalizedExamples: normalized,
			Responses:          rec.Responses,
		}
	}

	for _, intent := range domain.AllIntents() {
		if _, ok := f.Intents[string(intent)]; !ok {
			errs = append(errs, fmt.Errorf("intent %q is missing", intent))
		}
	}

	if len(f.FailurePhrases) == 0 {
		errs = append(errs, fmt.Errorf("failure_phrases must not be empty"))
	}
	corpus.FailurePhrases = f.FailurePhrases

	if len(errs) > 0 {
		return nil, &LoadError{Source: IntentsFile, Code: ErrCodeInvalid, Message: "intent corpus validation failed", Err: errors.Join(errs...)}
	}
	return corpus, nil
}
