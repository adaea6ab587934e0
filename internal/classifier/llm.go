package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/llm"
	"go.uber.org/zap"
)

type llmLabel struct {
	Intent string `json:"intent"`
}

// LLM asks a language model for the label and falls back to another
// classifier on any failure, so Predict still never fails.
type LLM struct {
	client   llm.Client
	fallback Classifier
	system   string
	log      *zap.Logger
}

// NewLLM builds a model-backed classifier. Up to examplesPerIntent
// examples of each intent are included in the system prompt.
func NewLLM(client llm.Client, fallback Classifier, corpus *domain.IntentCorpus, examplesPerIntent int, log *zap.Logger) *LLM {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLM{
		client:   client,
		fallback: fallback,
		system:   buildSystemPrompt(corpus, examplesPerIntent),
		log:      log.Named("classifier"),
	}
}

func (c *LLM) Predict(ctx context.Context, normalized string) domain.Intent {
	text, err := c.client.Generate(ctx, llm.Prompt{System: c.system, User: normalized})
	if err == nil {
		var label llmLabel
		label, err = llm.ExtractJSON[llmLabel](text, validateLabel)
		if err == nil {
			return domain.Intent(label.Intent)
		}
	}
	c.log.Debug("llm classification failed, using fallback", zap.Error(err))
	return c.fallback.Predict(ctx, normalized)
}

func validateLabel(l llmLabel) error {
	if !domain.Intent(l.Intent).IsValid() {
		return fmt.Errorf("unknown intent %q", l.Intent)
	}
	return nil
}

func buildSystemPrompt(corpus *domain.IntentCorpus, perIntent int) string {
	var b strings.Builder
	b.WriteString("You classify messages sent to a restaurant ordering assistant. ")
	b.WriteString("Messages are Russian, lowercased and lemmatized. ")
	b.WriteString(`Reply with a single JSON object {"intent": "<label>"} and nothing else. Labels:` + "\n")
	for _, in := range domain.AllIntents() {
		b.WriteString("- " + string(in))
		entry, ok := corpus.Entry(in)
		if ok && perIntent > 0 && len(entry.Examples) > 0 {
			n := min(perIntent, len(entry.Examples))
			b.WriteString(": " + strings.Join(entry.Examples[:n], "; "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
