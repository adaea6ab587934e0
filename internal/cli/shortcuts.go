package cli

import (
	"context"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/cli/formatter"
)

const (
	startText = "Привет! Я бот для заказа обедов. Чем могу помочь?"
	helpText  = "Я могу помочь с меню, оформлением заказа и информацией о работе ресторана. Просто напишите!"
)

// shortcut is a slash command that bypasses intent resolution.
type shortcut struct {
	name    string
	aliases []string
	desc    string
	quit    bool
	run     func(ctx context.Context, bot ChatBot, userID string) (string, error)
}

// shortcuts is filled in init because /help lists the table itself.
var shortcuts []shortcut

func init() {
	shortcuts = []shortcut{
		{
			name: "/start",
			desc: "приветствие",
			run: func(context.Context, ChatBot, string) (string, error) {
				return startText, nil
			},
		},
		{
			name: "/help",
			desc: "что умеет бот",
			run: func(context.Context, ChatBot, string) (string, error) {
				return helpText + "\n\n" + formatter.FormatHelp(shortcutHelp()), nil
			},
		},
		{
			name:    "/menu",
			aliases: []string{"📋 Меню"},
			desc:    "показать меню",
			run: func(_ context.Context, bot ChatBot, _ string) (string, error) {
				return bot.ShowMenu(), nil
			},
		},
		{
			name:    "/cart",
			aliases: []string{"🛒 Корзина"},
			desc:    "показать корзину",
			run: func(_ context.Context, bot ChatBot, userID string) (string, error) {
				return bot.ShowCart(userID), nil
			},
		},
		{
			name:    "/clear",
			aliases: []string{"/clear_cart", "❌ Очистить корзину"},
			desc:    "очистить корзину",
			run: func(_ context.Context, bot ChatBot, userID string) (string, error) {
				return bot.ClearCart(userID), nil
			},
		},
		{
			name:    "/checkout",
			aliases: []string{"/complete_order", "✅ Оформить заказ"},
			desc:    "оформить заказ",
			run: func(ctx context.Context, bot ChatBot, userID string) (string, error) {
				return bot.CompleteOrder(ctx, userID)
			},
		},
		{
			name:    "/quit",
			aliases: []string{"/exit"},
			desc:    "выйти",
			quit:    true,
		},
	}
}

func lookupShortcut(line string) (shortcut, bool) {
	line = strings.TrimSpace(line)
	for _, s := range shortcuts {
		if strings.EqualFold(line, s.name) {
			return s, true
		}
		for _, a := range s.aliases {
			if line == a {
				return s, true
			}
		}
	}
	return shortcut{}, false
}

func shortcutHelp() []formatter.Shortcut {
	out := make([]formatter.Shortcut, len(shortcuts))
	for i, s := range shortcuts {
		out[i] = formatter.Shortcut{Name: s.name, Description: s.desc}
	}
	return out
}

// turnResult is what one input line produced.
type turnResult struct {
	Reply    string
	FollowUp string
	Quit     bool
}

// runTurn answers one line: a shortcut calls the bot directly, anything
// else is a dialogue turn. The follow-up check runs after every answer.
func runTurn(ctx context.Context, bot ChatBot, userID, line string) (turnResult, error) {
	var (
		res turnResult
		err error
	)
	if s, ok := lookupShortcut(line); ok {
		if s.quit {
			return turnResult{Quit: true}, nil
		}
		res.Reply, err = s.run(ctx, bot, userID)
	} else {
		res.Reply, err = bot.HandleMessage(ctx, userID, line)
	}
	if err != nil {
		return turnResult{}, err
	}
	if text, ok := bot.FollowUp(userID); ok {
		res.FollowUp = text
	}
	return res, nil
}
