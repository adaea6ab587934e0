package domain

import (
	"fmt"
	"math"
)

// Taste holds the four taste attributes of a dish, each in [0,1].
type Taste struct {
	Spiciness  float64
	Vegetarian float64
	Saltiness  float64
	Sweetness  float64
}

// Validate reports the first attribute outside [0,1] or not a finite number.
func (t Taste) Validate() error {
	attrs := []struct {
		name string
		v    float64
	}{
		{"spiciness", t.Spiciness},
		{"vegetarian", t.Vegetarian},
		{"saltiness", t.Saltiness},
		{"sweetness", t.Sweetness},
	}
	for _, a := range attrs {
		if math.IsNaN(a.v) || a.v < 0 || a.v > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", a.name, a.v)
		}
	}
	return nil
}

// MenuItem is a catalog dish. Values are immutable once loaded and are
// shared by every session; carts hold copies.
type MenuItem struct {
	Key         string
	Name        string
	NameLower   string
	Price       int
	Description string
	Taste       Taste

	// NormalizedName is Name run through the text pipeline at load time.
	NormalizedName string
}

// Catalog is the ordered, read-only menu.
type Catalog struct {
	items []MenuItem
	byKey map[string]int
}

// NewCatalog builds a catalog preserving the order of items.
// Duplicate keys are rejected.
func NewCatalog(items []MenuItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]MenuItem, 0, len(items)),
		byKey: make(map[string]int, len(items)),
	}
	for _, it := range items {
		if _, dup := c.byKey[it.Key]; dup {
			return nil, fmt.Errorf("duplicate menu key %q", it.Key)
		}
		c.byKey[it.Key] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// Items returns the catalog in iteration order. The slice is a copy.
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of dishes.
func (c *Catalog) Len() int { return len(c.items) }

// Keys returns dish keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.items))
	for i, it := range c.items {
		keys[i] = it.Key
	}
	return keys
}

// FindByNormalizedName returns the first dish, in catalog order, whose
// normalized name is in names.
func (c *Catalog) FindByNormalizedName(names []string) (MenuItem, bool) {
	if len(names) == 0 {
		return MenuItem{}, false
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	for _, it := range c.items {
		if _, ok := set[it.NormalizedName]; ok {
			return it, true
		}
	}
	return MenuItem{}, false
}
