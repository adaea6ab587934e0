package domain

import "math"

// InitialRecommendationCounter is the cadence counter value of a new user.
const InitialRecommendationCounter = 5

// UserContext is the per-user dialogue state kept by the session store.
type UserContext struct {
	LastIntent            Intent
	Sentiment             float64
	Entities              []Entity
	RecommendationCounter int
}

// NewUserContext returns the state of a user who has not spoken yet.
func NewUserContext() UserContext {
	return UserContext{RecommendationCounter: InitialRecommendationCounter}
}

// ClampSentiment bounds v to [-1,1]. NaN maps to neutral 0.
func ClampSentiment(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
