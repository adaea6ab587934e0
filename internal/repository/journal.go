package repository

import (
	"context"
	"fmt"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/db"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

// Journal records completed checkouts. Each order and its items are
// written in one transaction.
type Journal struct {
	uow  db.UnitOfWork
	read OrderRepo
}

// NewJournal builds a journal. uow scopes writes; read serves queries
// outside a transaction.
func NewJournal(uow db.UnitOfWork, read OrderRepo) *Journal {
	return &Journal{uow: uow, read: read}
}

func (j *Journal) RecordOrder(ctx context.Context, o domain.Order) error {
	err := j.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteOrderRepo(tx).Create(ctx, &o)
	})
	if err != nil {
		return fmt.Errorf("recording order %s: %w", o.ID, err)
	}
	return nil
}

func (j *Journal) Recent(ctx context.Context, limit int) ([]*domain.Order, error) {
	return j.read.ListRecent(ctx, limit)
}

func (j *Journal) ForUser(ctx context.Context, userID string, limit int) ([]*domain.Order, error) {
	return j.read.ListByUser(ctx, userID, limit)
}
