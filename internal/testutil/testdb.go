package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/progressmate/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory progress database that lives for the
// duration of t.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening in-memory progress database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
