package intelligence

import (
	"context"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/classifier"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

// Resolver turns normalized text into a confirmed intent, or none.
type Resolver struct {
	classifier classifier.Classifier
	policy     ConfirmationPolicy
}

func NewResolver(c classifier.Classifier, policy ConfirmationPolicy) *Resolver {
	return &Resolver{classifier: c, policy: policy}
}

// Resolve predicts a label and returns it only if the policy confirms it.
// ok is false when the prediction was rejected; the intent is then
// domain.IntentNone.
func (r *Resolver) Resolve(ctx context.Context, normalized string) (domain.Intent, bool) {
	predicted := r.classifier.Predict(ctx, normalized)
	if !predicted.IsValid() || !r.policy.Confirms(predicted, normalized) {
		return domain.IntentNone, false
	}
	return predicted, true
}
