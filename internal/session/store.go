// Package session keeps per-user dialogue context and carts in memory.
//
// One entry per user holds both, so cart operations and checkout see a
// consistent view. A map-level lock guards entry lookup and creation only;
// each entry has its own lock, so users never wait on each other beyond
// the lookup.
package session

import (
	"errors"
	"math"
	"slices"
	"sync"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

// ErrUnknownUser is returned when a user's context is read before the
// user's first message.
var ErrUnknownUser = errors.New("unknown user")

// Turn is what one processed message contributes to the user's context.
type Turn struct {
	Sentiment float64
	Entities  []domain.Entity
	Intent    domain.Intent
}

type entry struct {
	mu   sync.Mutex
	ctx  *domain.UserContext
	cart []domain.MenuItem
}

// Store is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	users map[string]*entry
}

func NewStore() *Store {
	return &Store{users: make(map[string]*entry)}
}

func (s *Store) lookup(userID string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.users[userID]
	return e, ok
}

func (s *Store) getOrCreate(userID string) *entry {
	if e, ok := s.lookup(userID); ok {
		return e
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.users[userID]; ok {
		return e
	}
	e := &entry{}
	s.users[userID] = e
	return e
}

// Update folds one turn into the user's context, creating it on first
// use. Sentiment becomes the clamped mean of the old value and the turn's
// score; the counter grows by one; entities and last intent are replaced
// by this turn's, so a turn without an intent clears it. A NaN score
// counts as neutral.
func (s *Store) Update(userID string, t Turn) domain.UserContext {
	e := s.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := domain.NewUserContext()
	if e.ctx != nil {
		prev = *e.ctx
	}
	score := t.Sentiment
	if math.IsNaN(score) {
		score = 0
	}
	next := domain.UserContext{
		LastIntent:            t.Intent,
		Sentiment:             domain.ClampSentiment((prev.Sentiment + score) / 2),
		Entities:              slices.Clone(t.Entities),
		RecommendationCounter: prev.RecommendationCounter + 1,
	}
	e.ctx = &next
	return cloneContext(next)
}

// Context returns a copy of the user's context.
func (s *Store) Context(userID string) (domain.UserContext, error) {
	e, ok := s.lookup(userID)
	if !ok {
		return domain.UserContext{}, ErrUnknownUser
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ctx == nil {
		return domain.UserContext{}, ErrUnknownUser
	}
	return cloneContext(*e.ctx), nil
}

func (s *Store) Sentiment(userID string) (float64, error) {
	c, err := s.Context(userID)
	if err != nil {
		return 0, err
	}
	return c.Sentiment, nil
}

// AddToCart appends item to the user's cart. It does not create a context.
func (s *Store) AddToCart(userID string, item domain.MenuItem) {
	e := s.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = append(e.cart, item)
}

// Cart returns a copy of the user's cart in insertion order.
func (s *Store) Cart(userID string) []domain.MenuItem {
	e := s.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.cart)
}

func (s *Store) ClearCart(userID string) {
	e := s.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = nil
}

// Len returns the number of users seen so far.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// WithUser runs fn while holding the user's lock, for operations that
// must read and change cart and context together. fn must not call back
// into the Store for the same user.
func (s *Store) WithUser(userID string, fn func(u *User) error) error {
	e := s.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(&User{e: e})
}

// User is exclusive access to one user's entry inside WithUser.
type User struct {
	e *entry
}

func (u *User) Cart() []domain.MenuItem { return slices.Clone(u.e.cart) }

func (u *User) ClearCart() { u.e.cart = nil }

// Context returns the user's context; ok is false before the first message.
func (u *User) Context() (domain.UserContext, bool) {
	if u.e.ctx == nil {
		return domain.UserContext{}, false
	}
	return cloneContext(*u.e.ctx), true
}

// ResetRecommendationCounter sets the cadence counter back to zero. It is
// a no-op for users without a context.
func (u *User) ResetRecommendationCounter() {
	if u.e.ctx != nil {
		u.e.ctx.RecommendationCounter = 0
	}
}

func cloneContext(c domain.UserContext) domain.UserContext {
	c.Entities = slices.Clone(c.Entities)
	return c
}
