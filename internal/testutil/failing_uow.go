package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/db"
)

// FailOnNthExecUoW injects Err on the FailOn-th write inside the
// transaction, counting from 1. Reads are not counted. Exec reports how
// many writes were attempted in the last transaction.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	attempted atomic.Int32
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingTx{DBTX: tx, uow: u}
	u.attempted.Store(0)
	if err := fn(ctx, wrapped); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (u *FailOnNthExecUoW) Exec() int { return int(u.attempted.Load()) }

type failingTx struct {
	db.DBTX
	uow *FailOnNthExecUoW
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.uow.attempted.Add(1) == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
