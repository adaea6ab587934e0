package cli

import (
	"context"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"go.uber.org/zap"
)

// ChatBot is the conversational surface the commands drive.
type ChatBot interface {
	HandleMessage(ctx context.Context, userID, text string) (string, error)
	ShowMenu() string
	ShowCart(userID string) string
	ClearCart(userID string) string
	CompleteOrder(ctx context.Context, userID string) (string, error)
	SentimentOf(userID string) (float64, error)
	FollowUp(userID string) (string, bool)
}

// OrderLog reads the checkout journal.
type OrderLog interface {
	Recent(ctx context.Context, limit int) ([]*domain.Order, error)
	ForUser(ctx context.Context, userID string, limit int) ([]*domain.Order, error)
}

// App holds what the commands need. Orders is nil when the journal is
// disabled.
type App struct {
	Bot    ChatBot
	Orders OrderLog
	Logger *zap.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
	// SlowReplies shows a spinner while one-shot answers are computed.
	SlowReplies bool
	// HistoryPath is where chat input history is kept. Empty disables it.
	HistoryPath string
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}
