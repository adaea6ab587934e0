package testutil

import (
	"database/sql"
	"testing"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/db"
)

// NewTestDB opens an in-memory journal with migrations applied. It is
// closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
