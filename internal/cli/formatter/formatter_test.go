package formatter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderEmphasis(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"*Итого: 5 руб.*", "Итого: 5 руб."},
		{"a *b* c *d*", "a b c d"},
		{"unmatched * star", "unmatched * star"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RenderEmphasis(tt.in), tt.in)
	}
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"Name", "Sum"}, [][]string{{"a", "5"}, {"long", "120"}}, AlignLeft, AlignRight)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "a       5", lines[2])
	assert.Equal(t, "long  120", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestFormatOrders(t *testing.T) {
	borsch := domain.MenuItem{Name: "Борщ", Price: 350}
	mors := domain.MenuItem{Name: "Морс", Price: 120}
	orders := []*domain.Order{
		{
			ID:          "0123456789abcdef",
			UserID:      "анна",
			Items:       []domain.MenuItem{borsch, mors, borsch},
			Total:       820,
			Recommended: &domain.MenuItem{Name: "Чай"},
			CreatedAt:   time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		},
		{ID: "short", UserID: "олег", Items: []domain.MenuItem{mors}, Total: 120},
	}

	out := FormatOrders(orders, time.UTC)
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "2026-03-01 12:30")
	assert.Contains(t, out, "Борщ ×2, Морс")
	assert.Contains(t, out, "Чай")
	assert.Contains(t, out, "Заказов: 2, выручка: 940 руб.")
}

func TestFormatOrders_Empty(t *testing.T) {
	assert.Contains(t, FormatOrders(nil, nil), "Заказов пока нет.")
}

func TestFormatWelcomeAndHelp(t *testing.T) {
	shortcuts := []Shortcut{{"/menu", "меню"}, {"/cart", "корзина"}}

	welcome := FormatWelcome("Анна", shortcuts)
	assert.Contains(t, welcome, "Здравствуйте, Анна!")
	assert.Contains(t, welcome, "Команды: /menu /cart")

	assert.NotContains(t, FormatWelcome("", shortcuts), "Здравствуйте")

	help := FormatHelp(shortcuts)
	assert.Contains(t, help, "/menu")
	assert.Contains(t, help, "корзина")
}

func TestFormatLines(t *testing.T) {
	assert.Equal(t, "вы › привет", FormatUserLine("", "привет"))
	assert.Equal(t, "Анна › привет", FormatUserLine("Анна", "привет"))
	assert.Equal(t, "бот › Итого", FormatReply("*Итого*"))
	assert.Equal(t, "ошибка: boom", FormatError(errors.New("boom")))
	assert.Contains(t, FormatFollowUp("жаль"), "жаль")
}

func TestSentimentIndicator(t *testing.T) {
	assert.Equal(t, "● +0.50", SentimentIndicator(0.5))
	assert.Equal(t, "● -1.00", SentimentIndicator(-1))
}
