package assistant

import (
	"github.com/MikhailPshenisnov/KP-ISiT/internal/cart"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/classifier"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/corpus"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/intelligence"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/recommend"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/session"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/textproc"
)

// Thresholds groups the tunable numeric bounds of the dialogue core.
type Thresholds struct {
	Confirm          float64
	FallbackLength   float64
	FallbackDistance float64
	Recommendation   cart.Policy
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Confirm:          intelligence.DefaultConfirmThreshold,
		FallbackLength:   intelligence.DefaultLengthTolerance,
		FallbackDistance: intelligence.DefaultDistanceThreshold,
		Recommendation:   cart.DefaultPolicy(),
	}
}

// FromBundle assembles an Assistant over loaded corpora. A nil classifier
// is replaced by one trained on the bundle's intent examples.
func FromBundle(b *corpus.Bundle, clf classifier.Classifier, th Thresholds, chooser Chooser, opts Options) (*Assistant, error) {
	if clf == nil {
		clf = classifier.Train(b.Intents)
	}
	store := session.NewStore()
	carts := cart.NewManager(store, recommend.NewEngine(b.Catalog), th.Recommendation)
	dispatcher, err := NewDispatcher(b.Intents, b.Catalog, carts, chooser)
	if err != nil {
		return nil, err
	}
	matcher := intelligence.NewMatcher(b.Pipeline, b.Dialogues)
	matcher.LengthTolerance = th.FallbackLength
	matcher.DistanceThreshold = th.FallbackDistance

	return New(Components{
		Pipeline:   b.Pipeline,
		Extractor:  textproc.NewMenuExtractor(b.Catalog.Items()),
		Sentiment:  textproc.NewLexiconScorer(b.Lexicon, b.Lemmas),
		Resolver:   intelligence.NewResolver(clf, intelligence.NewConfirmationPolicy(b.Intents, th.Confirm)),
		Matcher:    matcher,
		Store:      store,
		Carts:      carts,
		Dispatcher: dispatcher,
	}, opts), nil
}
