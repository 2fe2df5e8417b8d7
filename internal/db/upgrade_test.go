package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_PreEILLevel simulates a catalog created before
// courses carried an English track level. Existing rows must survive and pick
// up the column default.
func TestMigrate_UpgradePath_PreEILLevel(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)

	legacy := []string{
		`CREATE TABLE courses (
			id          INTEGER PRIMARY KEY,
			course_name TEXT NOT NULL,
			course_type TEXT NOT NULL
			            CHECK(course_type IN ('major','minor','religion','eil','core')),
			holokai     TEXT NOT NULL DEFAULT ''
		)`,
		`INSERT INTO courses (id, course_name, course_type, holokai) VALUES (1, 'Business', 'major', 'Business')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var name string
	var level int
	err = db.QueryRow(`SELECT course_name, eil_level FROM courses WHERE id = 1`).Scan(&name, &level)
	require.NoError(t, err)
	assert.Equal(t, "Business", name)
	assert.Equal(t, 0, level)

	// Re-running on the upgraded schema tolerates the duplicate column.
	require.NoError(t, Migrate(db))
}
