package classifier

import (
	"context"
	"testing"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/llm"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubClient struct {
	text   string
	err    error
	prompt llm.Prompt
}

func (s *stubClient) Generate(_ context.Context, p llm.Prompt) (string, error) {
	s.prompt = p
	return s.text, s.err
}

func (s *stubClient) Available(context.Context) bool { return s.err == nil }

func fixed(i domain.Intent) Classifier {
	return Func(func(context.Context, string) domain.Intent { return i })
}

func TestLLM_Predict(t *testing.T) {
	tests := []struct {
		name string
		stub *stubClient
		want domain.Intent
	}{
		{"valid label", &stubClient{text: `{"intent":"menu_request"}`}, domain.IntentMenuRequest},
		{"unknown label", &stubClient{text: `{"intent":"dance"}`}, domain.IntentGoodbye},
		{"not json", &stubClient{text: "меню"}, domain.IntentGoodbye},
		{"transport error", &stubClient{err: llm.ErrUnavailable}, domain.IntentGoodbye},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLLM(tt.stub, fixed(domain.IntentGoodbye), testCorpus(), 2, zap.NewNop())
			assert.Equal(t, tt.want, c.Predict(context.Background(), "покажи меню"))
			assert.Equal(t, "покажи меню", tt.stub.prompt.User)
		})
	}
}

func TestLLM_SystemPromptListsEveryLabel(t *testing.T) {
	stub := &stubClient{text: `{"intent":"greeting"}`}
	c := NewLLM(stub, fixed(domain.IntentNone), testCorpus(), 1, nil)
	c.Predict(context.Background(), "привет")

	for _, in := range domain.AllIntents() {
		assert.Contains(t, stub.prompt.System, "- "+string(in))
	}
	assert.Contains(t, stub.prompt.System, "greeting: привет\n")
	assert.NotContains(t, stub.prompt.System, "здравствуйте")
}
