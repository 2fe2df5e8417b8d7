package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/degreeplan/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB returns a migrated in-memory catalog database that lives for the
// rest of the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening in-memory catalog")
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}
