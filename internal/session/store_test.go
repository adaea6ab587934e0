package session

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var soup = domain.MenuItem{Key: "суп", Name: "Суп", NameLower: "суп", Price: 200}

func TestStore_UnknownUser(t *testing.T) {
	s := NewStore()

	_, err := s.Sentiment("u1")
	assert.ErrorIs(t, err, ErrUnknownUser)
	_, err = s.Context("u1")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestStore_CounterStartsAtFiveAndGrows(t *testing.T) {
	s := NewStore()

	c := s.Update("u1", Turn{})
	assert.Equal(t, 6, c.RecommendationCounter)
	c = s.Update("u1", Turn{})
	assert.Equal(t, 7, c.RecommendationCounter)
}

func TestStore_SentimentSmoothing(t *testing.T) {
	s := NewStore()

	s.Update("u1", Turn{Sentiment: 0.8})
	got, err := s.Sentiment("u1")
	require.NoError(t, err)
	assert.InDelta(t, 0.4, got, 1e-9)

	s.Update("u1", Turn{Sentiment: -1})
	got, _ = s.Sentiment("u1")
	assert.InDelta(t, -0.3, got, 1e-9)
}

func TestStore_SentimentStaysInBounds(t *testing.T) {
	s := NewStore()
	raws := []float64{5, 5, 5, -7, -7, -7, -7, 3, 0.2, -100}
	for _, r := range raws {
		c := s.Update("u1", Turn{Sentiment: r})
		assert.GreaterOrEqual(t, c.Sentiment, -1.0)
		assert.LessOrEqual(t, c.Sentiment, 1.0)
	}
}

func TestStore_NaNScoreCountsAsNeutral(t *testing.T) {
	s := NewStore()

	s.Update("u1", Turn{Sentiment: 0.8})
	c := s.Update("u1", Turn{Sentiment: math.NaN()})
	assert.InDelta(t, 0.2, c.Sentiment, 1e-9)

	c = s.Update("u1", Turn{Sentiment: 0.6})
	assert.InDelta(t, 0.4, c.Sentiment, 1e-9)
	got, err := s.Sentiment("u1")
	require.NoError(t, err)
	assert.False(t, math.IsNaN(got))
}

func TestStore_TurnReplacesIntentAndEntities(t *testing.T) {
	s := NewStore()
	ents := []domain.Entity{{Type: domain.EntityMenuItem, Text: "суп", Normalized: "суп"}}

	s.Update("u1", Turn{Intent: domain.IntentOrderRequest, Entities: ents})
	ents[0].Text = "mutated"

	c, err := s.Context("u1")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentOrderRequest, c.LastIntent)
	assert.Equal(t, "суп", c.Entities[0].Text, "store keeps its own copy")

	c = s.Update("u1", Turn{})
	assert.Equal(t, domain.IntentNone, c.LastIntent)
	assert.Empty(t, c.Entities)
}

func TestStore_CartDoesNotCreateContext(t *testing.T) {
	s := NewStore()

	s.AddToCart("u1", soup)
	s.AddToCart("u1", soup)
	assert.Len(t, s.Cart("u1"), 2)

	_, err := s.Context("u1")
	assert.ErrorIs(t, err, ErrUnknownUser)

	s.ClearCart("u1")
	assert.Empty(t, s.Cart("u1"))
	assert.Equal(t, 1, s.Len())
}

func TestStore_CartIsCopied(t *testing.T) {
	s := NewStore()
	s.AddToCart("u1", soup)

	cart := s.Cart("u1")
	cart[0].Name = "changed"
	assert.Equal(t, "Суп", s.Cart("u1")[0].Name)
}

func TestStore_WithUser(t *testing.T) {
	s := NewStore()
	s.AddToCart("u1", soup)

	err := s.WithUser("u1", func(u *User) error {
		_, ok := u.Context()
		assert.False(t, ok)
		u.ResetRecommendationCounter()
		assert.Len(t, u.Cart(), 1)
		u.ClearCart()
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, s.Cart("u1"))

	s.Update("u1", Turn{})
	sentinel := fmt.Errorf("stop")
	err = s.WithUser("u1", func(u *User) error {
		u.ResetRecommendationCounter()
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	c, _ := s.Context("u1")
	assert.Equal(t, 0, c.RecommendationCounter)
}

func TestStore_ConcurrentUsers(t *testing.T) {
	s := NewStore()
	const users, turns = 16, 50

	var wg sync.WaitGroup
	for u := 0; u < users; u++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for i := 0; i < turns; i++ {
				s.Update(id, Turn{Sentiment: 0.5})
				s.AddToCart(id, soup)
				_ = s.Cart(id)
			}
		}(fmt.Sprintf("u%d", u))
	}
	wg.Wait()

	assert.Equal(t, users, s.Len())
	for u := 0; u < users; u++ {
		id := fmt.Sprintf("u%d", u)
		c, err := s.Context(id)
		require.NoError(t, err)
		assert.Equal(t, domain.InitialRecommendationCounter+turns, c.RecommendationCounter)
		assert.Len(t, s.Cart(id), turns)
	}
}

func TestStore_ConcurrentTurnsSameUser(t *testing.T) {
	s := NewStore()
	const workers, turns = 8, 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < turns; i++ {
				s.Update("shared", Turn{Sentiment: 1})
			}
		}()
	}
	wg.Wait()

	c, err := s.Context("shared")
	require.NoError(t, err)
	assert.Equal(t, domain.InitialRecommendationCounter+workers*turns, c.RecommendationCounter)
	assert.LessOrEqual(t, c.Sentiment, 1.0)
}
