// Package assistant is the conversational entry point: it runs one user
// message through normalization, intent resolution, session update and
// dispatch, and exposes the direct cart and menu operations used by
// transport shortcuts.
package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/cart"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/intelligence"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/session"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/textproc"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultApologyThreshold is the sentiment at or below which FollowUp
// offers an apology.
const DefaultApologyThreshold = -0.75

// ApologyText is sent after a turn that left the user upset.
const ApologyText = "Нам очень жаль, что у вас сложилось такое впечатление. " +
	"Мы ценим ваше мнение и обязательно постараемся стать лучше."

// OrderRecorder stores completed orders.
type OrderRecorder interface {
	RecordOrder(ctx context.Context, o domain.Order) error
}

// Components are the collaborators an Assistant is built from.
type Components struct {
	Pipeline   *textproc.Pipeline
	Extractor  textproc.EntityExtractor
	Sentiment  textproc.SentimentScorer
	Resolver   *intelligence.Resolver
	Matcher    *intelligence.Matcher
	Store      *session.Store
	Carts      *cart.Manager
	Dispatcher *Dispatcher
}

// Options tune behavior around the core turn pipeline. Zero values pick
// defaults.
type Options struct {
	ApologyThreshold *float64
	Recorder         OrderRecorder
	Logger           *zap.Logger
	Now              func() time.Time
}

type Assistant struct {
	Components
	apologyAt float64
	recorder  OrderRecorder
	log       *zap.Logger
	now       func() time.Time
}

func New(c Components, opts Options) *Assistant {
	a := &Assistant{
		Components: c,
		apologyAt:  DefaultApologyThreshold,
		recorder:   opts.Recorder,
		log:        opts.Logger,
		now:        opts.Now,
	}
	if opts.ApologyThreshold != nil {
		a.apologyAt = *opts.ApologyThreshold
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

// HandleMessage answers one message. The user's context is updated exactly
// once per call, before any handler runs, whether or not an intent was
// recognized.
func (a *Assistant) HandleMessage(ctx context.Context, userID, text string) (string, error) {
	normalized := a.Pipeline.Normalize(text)
	sentiment := a.Sentiment.Score(normalized)
	entities := a.Extractor.Extract(normalized)
	intent, confirmed := a.Resolver.Resolve(ctx, normalized)

	uc := a.Store.Update(userID, session.Turn{
		Sentiment: sentiment,
		Entities:  entities,
		Intent:    intent,
	})

	log := a.log.With(
		zap.String("user", userID),
		zap.String("intent", string(intent)),
		zap.Float64("sentiment", uc.Sentiment),
		zap.Int("counter", uc.RecommendationCounter),
		zap.Int("entities", len(entities)),
		zap.Int("users", a.Store.Len()),
	)

	if confirmed {
		reply, err := a.Dispatcher.Dispatch(ctx, intent, Turn{UserID: userID, Entities: entities})
		if err != nil {
			log.Error("dispatch failed", zap.Error(err))
			return "", err
		}
		if reply.Receipt != nil {
			a.record(ctx, userID, *reply.Receipt)
		}
		log.Debug("turn handled", zap.String("route", "intent"))
		return reply.Text, nil
	}

	if answer, ok := a.Matcher.MatchNormalized(normalized); ok {
		log.Debug("turn handled", zap.String("route", "fallback"))
		return answer, nil
	}
	log.Debug("turn handled", zap.String("route", "failure"))
	return a.Dispatcher.Failure(), nil
}

func (a *Assistant) ShowMenu() string { return a.Dispatcher.Menu() }

func (a *Assistant) ShowCart(userID string) string { return a.Carts.Show(userID) }

func (a *Assistant) ClearCart(userID string) string { return a.Carts.Clear(userID) }

// CompleteOrder checks out the cart without going through intent
// resolution. It does not count as a dialogue turn.
func (a *Assistant) CompleteOrder(ctx context.Context, userID string) (string, error) {
	r, err := a.Carts.Checkout(userID)
	if err != nil {
		return "", err
	}
	if !r.Empty {
		a.record(ctx, userID, r)
	}
	return r.Text, nil
}

// SentimentOf returns session.ErrUnknownUser before the user's first message.
func (a *Assistant) SentimentOf(userID string) (float64, error) {
	return a.Store.Sentiment(userID)
}

// FollowUp returns an apology when the user's smoothed sentiment is at or
// below the apology threshold.
func (a *Assistant) FollowUp(userID string) (string, bool) {
	s, err := a.Store.Sentiment(userID)
	if err != nil || s > a.apologyAt {
		return "", false
	}
	return ApologyText, true
}

// record journals an order. A failing recorder never fails the reply.
func (a *Assistant) record(ctx context.Context, userID string, r cart.Receipt) {
	if a.recorder == nil {
		return
	}
	o := domain.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Items:       r.Items,
		Total:       r.Total,
		Recommended: r.Recommended,
		CreatedAt:   a.now().UTC(),
	}
	if err := a.recorder.RecordOrder(ctx, o); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		a.log.Warn("recording order failed", zap.String("user", userID), zap.String("order", o.ID), zap.Error(err))
		return
	}
	a.log.Info("order recorded", zap.String("user", userID), zap.String("order", o.ID), zap.Int("total", o.Total))
}
