package testutil

import (
	"strings"
	"time"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/google/uuid"
)

type MenuItemOption func(*domain.MenuItem)

func WithPrice(p int) MenuItemOption {
	return func(it *domain.MenuItem) { it.Price = p }
}

func WithTaste(t domain.Taste) MenuItemOption {
	return func(it *domain.MenuItem) { it.Taste = t }
}

func WithDescription(d string) MenuItemOption {
	return func(it *domain.MenuItem) { it.Description = d }
}

// NewTestMenuItem builds a dish keyed by its lowercased name with neutral
// taste attributes.
func NewTestMenuItem(name string, opts ...MenuItemOption) domain.MenuItem {
	lower := strings.ToLower(name)
	it := domain.MenuItem{
		Key:            lower,
		Name:           name,
		NameLower:      lower,
		Price:          100,
		Taste:          domain.Taste{Spiciness: 0.5, Vegetarian: 0.5, Saltiness: 0.5, Sweetness: 0.5},
		NormalizedName: lower,
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

type OrderOption func(*domain.Order)

func WithRecommended(it domain.MenuItem) OrderOption {
	return func(o *domain.Order) { o.Recommended = &it }
}

func WithCreatedAt(t time.Time) OrderOption {
	return func(o *domain.Order) { o.CreatedAt = t }
}

// NewTestOrder builds an order for userID whose total matches items.
func NewTestOrder(userID string, items []domain.MenuItem, opts ...OrderOption) *domain.Order {
	o := &domain.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Items:     items,
		Total:     domain.SumPrices(items),
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
