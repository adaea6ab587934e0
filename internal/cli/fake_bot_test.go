package cli

import (
	"context"
	"errors"
	"sync"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/session"
)

// fakeBot records calls and answers with fixed text. Messages equal to
// "boom" fail; "грр" leaves the user upset so FollowUp fires.
type fakeBot struct {
	mu    sync.Mutex
	calls []string
	upset map[string]bool
	known map[string]bool
}

func newFakeBot() *fakeBot {
	return &fakeBot{
		upset: make(map[string]bool),
		known: make(map[string]bool),
	}
}

func (b *fakeBot) record(call string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, call)
}

func (b *fakeBot) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *fakeBot) HandleMessage(_ context.Context, userID, text string) (string, error) {
	b.record("message:" + userID + ":" + text)
	if text == "boom" {
		return "", errors.New("boom")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.known[userID] = true
	b.upset[userID] = text == "грр"
	return "ответ на " + text, nil
}

func (b *fakeBot) ShowMenu() string {
	b.record("menu")
	return "*Наше меню*"
}

func (b *fakeBot) ShowCart(userID string) string {
	b.record("cart:" + userID)
	return "корзина"
}

func (b *fakeBot) ClearCart(userID string) string {
	b.record("clear:" + userID)
	return "очищено"
}

func (b *fakeBot) CompleteOrder(_ context.Context, userID string) (string, error) {
	b.record("checkout:" + userID)
	return "заказ оформлен", nil
}

func (b *fakeBot) SentimentOf(userID string) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.known[userID] {
		return 0, session.ErrUnknownUser
	}
	if b.upset[userID] {
		return -1, nil
	}
	return 0, nil
}

func (b *fakeBot) FollowUp(userID string) (string, bool) {
	s, err := b.SentimentOf(userID)
	if err != nil || s > -0.75 {
		return "", false
	}
	return "простите", true
}
