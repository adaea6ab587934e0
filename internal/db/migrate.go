package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		total            INTEGER NOT NULL CHECK(total >= 0),
		recommended_key  TEXT,
		recommended_name TEXT,
		created_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS order_items (
		order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		item_key TEXT NOT NULL,
		name     TEXT NOT NULL,
		price    INTEGER NOT NULL CHECK(price >= 0),
		PRIMARY KEY (order_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at)`,
}

// Migrate applies every schema statement. All statements are idempotent,
// so it is safe to run on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
