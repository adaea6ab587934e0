// Package cart renders and checks out the per-user carts kept by the
// session store.
package cart

import (
	"fmt"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/session"
)

// Fixed user-facing texts.
const (
	EmptyCartText     = "Ваша корзина пуста."
	ClearedText       = "Корзина очищена"
	EmptyCheckoutText = "Ваша корзина пуста. Добавьте что-нибудь из меню."

	cartHeader     = "🛒 *Ваша корзина*:"
	checkoutHeader = "✅ *Ваш заказ оформлен!*"
	checkoutFooter = "Спасибо за заказ! Ожидайте подтверждения."
	recommendIntro = "Мы провели анализ на основе вашего заказа и думаем это может вам понравиться. " +
		"Вы можете заказать это прямо сейчас или когда посетите нас в следующий раз"
	recommendHeader = "🌟 *Рекомендуем попробовать*:"
)

// Recommender picks one more dish for a cart.
type Recommender interface {
	Recommend(cart []domain.MenuItem) (domain.MenuItem, bool)
}

// Policy gates recommendations at checkout. Both comparisons are strict.
type Policy struct {
	MinSentiment float64
	MinCounter   int
}

func DefaultPolicy() Policy {
	return Policy{MinSentiment: 0.4, MinCounter: 10}
}

func (p Policy) allows(c domain.UserContext) bool {
	return c.Sentiment > p.MinSentiment && c.RecommendationCounter > p.MinCounter
}

// Summary is a cart's contents and total.
type Summary struct {
	Items []domain.MenuItem
	Total int
}

// Receipt is the outcome of a checkout. Empty is set when there was
// nothing to check out; Items and Total are then zero.
type Receipt struct {
	Text        string
	Items       []domain.MenuItem
	Total       int
	Recommended *domain.MenuItem
	Empty       bool
}

type Manager struct {
	store       *session.Store
	recommender Recommender
	policy      Policy
}

func NewManager(store *session.Store, r Recommender, policy Policy) *Manager {
	return &Manager{store: store, recommender: r, policy: policy}
}

func (m *Manager) Add(userID string, item domain.MenuItem) {
	m.store.AddToCart(userID, item)
}

func (m *Manager) Items(userID string) []domain.MenuItem {
	return m.store.Cart(userID)
}

func (m *Manager) Summary(userID string) Summary {
	items := m.store.Cart(userID)
	return Summary{Items: items, Total: domain.SumPrices(items)}
}

// Clear empties the cart and returns the confirmation text.
func (m *Manager) Clear(userID string) string {
	m.store.ClearCart(userID)
	return ClearedText
}

// Show renders the cart as an itemized list with a total.
func (m *Manager) Show(userID string) string {
	items := m.store.Cart(userID)
	if len(items) == 0 {
		return EmptyCartText
	}
	var b strings.Builder
	b.WriteString(cartHeader + "\n\n")
	writeLines(&b, items)
	return b.String()
}

// Checkout renders a receipt and empties the cart. When the user's mood
// and cadence counter allow it, a recommendation based on the checked out
// items is appended and the counter is reset. Everything happens under
// the user's lock. A non-empty cart without a context is a caller error
// and leaves the cart untouched.
func (m *Manager) Checkout(userID string) (Receipt, error) {
	var r Receipt
	err := m.store.WithUser(userID, func(u *session.User) error {
		items := u.Cart()
		if len(items) == 0 {
			r = Receipt{Text: EmptyCheckoutText, Empty: true}
			return nil
		}
		ctx, ok := u.Context()
		if !ok {
			return fmt.Errorf("checkout for %q: %w", userID, session.ErrUnknownUser)
		}

		var b strings.Builder
		b.WriteString(checkoutHeader + "\n\n")
		writeLines(&b, items)
		b.WriteString("\n\n" + checkoutFooter)
		u.ClearCart()

		r = Receipt{Items: items, Total: domain.SumPrices(items)}
		if m.recommender != nil && m.policy.allows(ctx) {
			if rec, found := m.recommender.Recommend(items); found {
				b.WriteString("\n\n" + recommendIntro + "\n\n")
				b.WriteString(recommendHeader + "\n")
				fmt.Fprintf(&b, "%s - %d руб.\n", rec.Name, rec.Price)
				b.WriteString(rec.Description)
				r.Recommended = &rec
				u.ResetRecommendationCounter()
			}
		}
		r.Text = b.String()
		return nil
	})
	return r, err
}

func writeLines(b *strings.Builder, items []domain.MenuItem) {
	for _, it := range items {
		fmt.Fprintf(b, "• %s - %d руб.\n", it.Name, it.Price)
	}
	fmt.Fprintf(b, "\n*Итого: %d руб.*", domain.SumPrices(items))
}
