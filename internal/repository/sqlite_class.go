package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/db"
	"github.com/alexanderramin/degreeplan/internal/domain"
)

const classColumns = `c.id, c.class_number, c.class_name, c.credits, c.semesters_offered,
	c.days_offered, c.times_offered, c.is_senior_class, c.restrictions, c.description`

const (
	requisitePre = "pre"
	requisiteCo  = "co"
)

// SQLiteClassRepo implements ClassRepo using a SQLite database.
type SQLiteClassRepo struct {
	db db.DBTX
}

// NewSQLiteClassRepo creates a new SQLiteClassRepo.
func NewSQLiteClassRepo(conn db.DBTX) *SQLiteClassRepo {
	return &SQLiteClassRepo{db: conn}
}

func (r *SQLiteClassRepo) Create(ctx context.Context, c *domain.Class) error {
	query := `INSERT INTO classes (id, class_number, class_name, credits, semesters_offered,
		days_offered, times_offered, is_senior_class, restrictions, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, classArgs(c)...); err != nil {
		return fmt.Errorf("inserting class %s: %w", c.Number, err)
	}
	return r.insertRequisites(ctx, c)
}

// Upsert inserts the class or replaces an existing row with the same id,
// including its requisite edges.
func (r *SQLiteClassRepo) Upsert(ctx context.Context, c *domain.Class) error {
	query := `INSERT INTO classes (id, class_number, class_name, credits, semesters_offered,
		days_offered, times_offered, is_senior_class, restrictions, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			class_number = excluded.class_number,
			class_name = excluded.class_name,
			credits = excluded.credits,
			semesters_offered = excluded.semesters_offered,
			days_offered = excluded.days_offered,
			times_offered = excluded.times_offered,
			is_senior_class = excluded.is_senior_class,
			restrictions = excluded.restrictions,
			description = excluded.description`
	if _, err := r.db.ExecContext(ctx, query, classArgs(c)...); err != nil {
		return fmt.Errorf("upserting class %s: %w", c.Number, err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM class_requisites WHERE class_id = ?`, c.ID); err != nil {
		return fmt.Errorf("clearing requisites of class %d: %w", c.ID, err)
	}
	return r.insertRequisites(ctx, c)
}

func (r *SQLiteClassRepo) GetByID(ctx context.Context, id int64) (*domain.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes c WHERE c.id = ?`
	c, err := scanClass(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("class %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	classes := []domain.Class{*c}
	if err := r.attachRequisites(ctx, classes); err != nil {
		return nil, err
	}
	return &classes[0], nil
}

// ListBySection returns a section's classes in catalog order.
func (r *SQLiteClassRepo) ListBySection(ctx context.Context, sectionID int64) ([]domain.Class, error) {
	query := `SELECT ` + classColumns + `
		FROM classes_in_course cic
		JOIN classes c ON c.id = cic.class_id
		WHERE cic.section_id = ?
		ORDER BY cic.position, c.id`
	rows, err := r.db.QueryContext(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("listing classes of section %d: %w", sectionID, err)
	}

	var classes []domain.Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		classes = append(classes, *c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating classes: %w", err)
	}

	if err := r.attachRequisites(ctx, classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *SQLiteClassRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting classes: %w", err)
	}
	return n, nil
}

func (r *SQLiteClassRepo) insertRequisites(ctx context.Context, c *domain.Class) error {
	query := `INSERT OR IGNORE INTO class_requisites (class_id, requisite_id, kind, position) VALUES (?, ?, ?, ?)`
	for i, id := range c.Prerequisites {
		if _, err := r.db.ExecContext(ctx, query, c.ID, id, requisitePre, i); err != nil {
			return fmt.Errorf("inserting prerequisite %d of class %d: %w", id, c.ID, err)
		}
	}
	for i, id := range c.Corequisites {
		if _, err := r.db.ExecContext(ctx, query, c.ID, id, requisiteCo, i); err != nil {
			return fmt.Errorf("inserting corequisite %d of class %d: %w", id, c.ID, err)
		}
	}
	return nil
}

// attachRequisites fills prerequisite and corequisite ids for classes with a
// single query. Rows must already be closed: in-memory databases run on one
// connection.
func (r *SQLiteClassRepo) attachRequisites(ctx context.Context, classes []domain.Class) error {
	if len(classes) == 0 {
		return nil
	}
	index := make(map[int64]int, len(classes))
	args := make([]any, 0, len(classes))
	for i, c := range classes {
		index[c.ID] = i
		args = append(args, c.ID)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(args)), ",")
	query := `SELECT class_id, requisite_id, kind FROM class_requisites
		WHERE class_id IN (` + placeholders + `)
		ORDER BY class_id, kind, position`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("loading requisites: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var classID, reqID int64
		var kind string
		if err := rows.Scan(&classID, &reqID, &kind); err != nil {
			return fmt.Errorf("scanning requisite: %w", err)
		}
		c := &classes[index[classID]]
		if kind == requisitePre {
			c.Prerequisites = append(c.Prerequisites, reqID)
		} else {
			c.Corequisites = append(c.Corequisites, reqID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating requisites: %w", err)
	}
	return nil
}

func classArgs(c *domain.Class) []any {
	return []any{
		c.ID,
		c.Number,
		c.Name,
		c.Credits,
		encodeStrings(seasonsToStrings(c.Offered)),
		encodeStrings(c.DaysOffered),
		encodeStrings(c.TimesOffered),
		boolToInt(c.SeniorStanding),
		c.Restrictions,
		c.Description,
	}
}

func scanClass(s rowScanner) (*domain.Class, error) {
	var c domain.Class
	var semesters, days, times string
	var senior int
	err := s.Scan(&c.ID, &c.Number, &c.Name, &c.Credits, &semesters, &days, &times,
		&senior, &c.Restrictions, &c.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning class: %w", err)
	}

	names, err := decodeStrings(semesters)
	if err != nil {
		return nil, err
	}
	if c.Offered, err = parseSeasons(names); err != nil {
		return nil, fmt.Errorf("class %d: %w", c.ID, err)
	}
	if c.DaysOffered, err = decodeStrings(days); err != nil {
		return nil, err
	}
	if c.TimesOffered, err = decodeStrings(times); err != nil {
		return nil, err
	}
	c.SeniorStanding = intToBool(senior)
	return &c, nil
}
