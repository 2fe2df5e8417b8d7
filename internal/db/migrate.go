package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillDisplayOrder(db); err != nil {
		return fmt.Errorf("backfilling section display order: %w", err)
	}
	return nil
}

// migrateBackfillDisplayOrder gives sections imported without an explicit
// display order a stable one (their id order within the course).
func migrateBackfillDisplayOrder(db *sql.DB) error {
	ctx := context.Background()
	rows, err := db.QueryContext(ctx,
		`SELECT id, course_id FROM course_sections WHERE display_order = 0 ORDER BY course_id, id`)
	if err != nil {
		return fmt.Errorf("listing unordered sections: %w", err)
	}
	type pending struct{ id, courseID int64 }
	var todo []pending
	for rows.Next() {
		var p pending
		if err := rows.Scan(&p.id, &p.courseID); err != nil {
			rows.Close()
			return fmt.Errorf("scanning section: %w", err)
		}
		todo = append(todo, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating sections: %w", err)
	}
	if len(todo) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting backfill transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range todo {
		var maxOrder int
		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(display_order), 0) FROM course_sections WHERE course_id = ?`, p.courseID,
		).Scan(&maxOrder); err != nil {
			return fmt.Errorf("reading max display order: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE course_sections SET display_order = ? WHERE id = ?`, maxOrder+1, p.id,
		); err != nil {
			return fmt.Errorf("updating section %d: %w", p.id, err)
		}
	}
	return tx.Commit()
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		id          INTEGER PRIMARY KEY,
		course_name TEXT NOT NULL,
		course_type TEXT NOT NULL
		            CHECK(course_type IN ('major','minor','religion','eil','core')),
		holokai     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS course_sections (
		id                     INTEGER PRIMARY KEY,
		course_id              INTEGER NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		section_name           TEXT NOT NULL,
		is_required            INTEGER NOT NULL DEFAULT 1,
		credits_needed_to_take INTEGER NOT NULL DEFAULT 0,
		display_order          INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_course_sections_course ON course_sections(course_id)`,

	`CREATE TABLE IF NOT EXISTS classes (
		id                INTEGER PRIMARY KEY,
		class_number      TEXT NOT NULL,
		class_name        TEXT NOT NULL DEFAULT '',
		credits           INTEGER NOT NULL CHECK(credits > 0),
		semesters_offered TEXT NOT NULL DEFAULT '[]',
		days_offered      TEXT NOT NULL DEFAULT '[]',
		times_offered     TEXT NOT NULL DEFAULT '[]',
		is_senior_class   INTEGER NOT NULL DEFAULT 0,
		restrictions      TEXT NOT NULL DEFAULT '',
		description       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_classes_number ON classes(class_number)`,

	// Requisite targets are not foreign keys: catalogs may be imported in any
	// order and dangling edges are reported by the planner.
	`CREATE TABLE IF NOT EXISTS class_requisites (
		class_id     INTEGER NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		requisite_id INTEGER NOT NULL,
		kind         TEXT NOT NULL CHECK(kind IN ('pre','co')),
		position     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (class_id, requisite_id, kind)
	)`,

	`CREATE TABLE IF NOT EXISTS classes_in_course (
		course_id  INTEGER NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		section_id INTEGER NOT NULL REFERENCES course_sections(id) ON DELETE CASCADE,
		class_id   INTEGER NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (section_id, class_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_classes_in_course_course ON classes_in_course(course_id)`,
	`CREATE INDEX IF NOT EXISTS idx_classes_in_course_class ON classes_in_course(class_id)`,

	// English-proficiency track level (1 or 2); 0 for every other course.
	`ALTER TABLE courses ADD COLUMN eil_level INTEGER NOT NULL DEFAULT 0`,

	`CREATE INDEX IF NOT EXISTS idx_courses_type ON courses(course_type)`,
}
