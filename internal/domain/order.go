package domain

import "time"

// Order is a journal record of a completed checkout.
type Order struct {
	ID          string
	UserID      string
	Items       []MenuItem
	Total       int
	Recommended *MenuItem
	CreatedAt   time.Time
}

// SumPrices returns the total price of items.
func SumPrices(items []MenuItem) int {
	total := 0
	for _, it := range items {
		total += it.Price
	}
	return total
}
