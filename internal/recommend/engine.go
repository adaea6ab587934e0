// Package recommend suggests one more dish that fits the taste of an
// order.
package recommend

import (
	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

// Engine scores catalog items against a cart. It holds no mutable state.
type Engine struct {
	catalog *domain.Catalog
}

func NewEngine(catalog *domain.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Profile is the per-attribute mean taste of cart; ok is false for an
// empty cart.
func Profile(cart []domain.MenuItem) (domain.Taste, bool) {
	if len(cart) == 0 {
		return domain.Taste{}, false
	}
	var p domain.Taste
	for _, it := range cart {
		p.Spiciness += it.Taste.Spiciness
		p.Vegetarian += it.Taste.Vegetarian
		p.Saltiness += it.Taste.Saltiness
		p.Sweetness += it.Taste.Sweetness
	}
	n := float64(len(cart))
	p.Spiciness /= n
	p.Vegetarian /= n
	p.Saltiness /= n
	p.Sweetness /= n
	return p, true
}

// Rank scores every catalog item not already in cart, in catalog order.
// Items are compared to the cart by lowercase name.
func (e *Engine) Rank(cart []domain.MenuItem) []Scored {
	profile, ok := Profile(cart)
	if !ok {
		return nil
	}
	inCart := make(map[string]struct{}, len(cart))
	for _, it := range cart {
		inCart[it.NameLower] = struct{}{}
	}

	var out []Scored
	for _, item := range e.catalog.Items() {
		if _, skip := inCart[item.NameLower]; skip {
			continue
		}
		out = append(out, Score(item, profile))
	}
	return out
}

// Recommend returns the best scoring item. Only a strictly higher score
// replaces the current best, so ties keep the earliest catalog item.
func (e *Engine) Recommend(cart []domain.MenuItem) (domain.MenuItem, bool) {
	ranked := e.Rank(cart)
	if len(ranked) == 0 {
		return domain.MenuItem{}, false
	}
	best := ranked[0]
	for _, s := range ranked[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best.Item, true
}
