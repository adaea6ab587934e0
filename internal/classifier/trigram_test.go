package classifier

import (
	"context"
	"testing"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testCorpus() *domain.IntentCorpus {
	entry := func(examples ...string) domain.IntentEntry {
		return domain.IntentEntry{Examples: examples, NormalizedExamples: examples, Responses: []string{"ок"}}
	}
	return &domain.IntentCorpus{
		Intents: map[domain.Intent]domain.IntentEntry{
			domain.IntentGreeting:     entry("привет", "здравствуйте", "добрый день"),
			domain.IntentGoodbye:      entry("пока", "до свидания"),
			domain.IntentMenuRequest:  entry("показать меню", "что есть"),
			domain.IntentCartRequest:  entry("что в корзина", "показать корзина"),
			domain.IntentOrderRequest: entry("хотеть борщ", "хотеть чай"),
			domain.IntentPriceRequest: {},
		},
		FailurePhrases: []string{"?"},
	}
}

func TestTrigram_Predict(t *testing.T) {
	c := Train(testCorpus())
	ctx := context.Background()

	tests := []struct {
		text string
		want domain.Intent
	}{
		{"привет", domain.IntentGreeting},
		{"приветик", domain.IntentGreeting},
		{"до свидания", domain.IntentGoodbye},
		{"показать меню", domain.IntentMenuRequest},
		{"корзина", domain.IntentCartRequest},
		{"хотеть борщ", domain.IntentOrderRequest},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Predict(ctx, tt.text))
		})
	}
}

func TestTrigram_SkipsIntentsWithoutExamples(t *testing.T) {
	c := Train(testCorpus())
	assert.NotContains(t, c.Labels(), domain.IntentPriceRequest)
	assert.Len(t, c.Labels(), 5)
}

func TestTrigram_UnknownInputFallsBackToFirstLabel(t *testing.T) {
	c := Train(testCorpus())
	labels := c.Labels()
	assert.Equal(t, labels[0], c.Predict(context.Background(), "xyz"))
	assert.Equal(t, labels[0], c.Predict(context.Background(), ""))
}

func TestTrigram_EmptyCorpus(t *testing.T) {
	c := Train(&domain.IntentCorpus{})
	assert.Equal(t, domain.IntentNone, c.Predict(context.Background(), "привет"))
}

func TestTermCounts(t *testing.T) {
	assert.Equal(t, map[string]int{" да": 1, "да ": 1}, termCounts("да"))
	assert.Empty(t, termCounts(""))
}
