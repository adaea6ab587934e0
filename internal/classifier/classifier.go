// Package classifier maps normalized user text onto an intent label.
//
// Classifiers are built once at startup and never fail: when no label
// fits, they still return their best guess and leave it to the resolver's
// confirmation policy to reject it.
package classifier

import (
	"context"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

// Classifier predicts an intent for already normalized text.
type Classifier interface {
	Predict(ctx context.Context, normalized string) domain.Intent
}

// Func adapts a plain function to Classifier.
type Func func(ctx context.Context, normalized string) domain.Intent

func (f Func) Predict(ctx context.Context, normalized string) domain.Intent {
	return f(ctx, normalized)
}
