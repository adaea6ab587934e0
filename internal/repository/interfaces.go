package repository

import (
	"context"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

// OrderRepo stores completed checkouts.
type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Order, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Order, error)
}
