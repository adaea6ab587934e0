package textproc

import (
	"strings"
	"unicode"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

// EntityExtractor finds entities in normalized text.
type EntityExtractor interface {
	Extract(normalized string) []domain.Entity
}

type menuName struct {
	display    string
	normalized string
}

// MenuExtractor recognises dish names (as whole-word sequences of the
// normalized name) and bare numbers.
type MenuExtractor struct {
	names []menuName
}

// NewMenuExtractor indexes the normalized names of items, keeping their order.
func NewMenuExtractor(items []domain.MenuItem) *MenuExtractor {
	e := &MenuExtractor{}
	for _, it := range items {
		if it.NormalizedName == "" {
			continue
		}
		e.names = append(e.names, menuName{display: it.Name, normalized: it.NormalizedName})
	}
	return e
}

func (e *MenuExtractor) Extract(normalized string) []domain.Entity {
	var out []domain.Entity
	padded := " " + normalized + " "
	for _, n := range e.names {
		if strings.Contains(padded, " "+n.normalized+" ") {
			out = append(out, domain.Entity{
				Type:       domain.EntityMenuItem,
				Text:       n.display,
				Normalized: n.normalized,
			})
		}
	}
	for _, w := range strings.Fields(normalized) {
		if isNumber(w) {
			out = append(out, domain.Entity{Type: domain.EntityNumber, Text: w, Normalized: w})
		}
	}
	return out
}

func isNumber(w string) bool {
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return w != ""
}
