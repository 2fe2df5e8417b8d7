package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/db"
	"github.com/alexanderramin/degreeplan/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

// Create inserts the course header only; sections are added separately.
func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (id, course_name, course_type, holokai, eil_level) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, string(c.Type), c.Holokai, c.EILLevel)
	if err != nil {
		return fmt.Errorf("inserting course %q: %w", c.Name, err)
	}
	return nil
}

func (r *SQLiteCourseRepo) CreateSection(ctx context.Context, s *domain.Section) error {
	query := `INSERT INTO course_sections (id, course_id, section_name, is_required, credits_needed_to_take, display_order)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.CourseID,
		s.Name,
		boolToInt(s.Required),
		s.CreditsNeeded,
		s.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("inserting section %q: %w", s.Name, err)
	}
	return nil
}

func (r *SQLiteCourseRepo) AddClassToSection(ctx context.Context, courseID, sectionID, classID int64, position int) error {
	query := `INSERT INTO classes_in_course (course_id, section_id, class_id, position) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, courseID, sectionID, classID, position); err != nil {
		return fmt.Errorf("linking class %d to section %d: %w", classID, sectionID, err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	query := `SELECT id, course_name, course_type, holokai, eil_level FROM courses WHERE id = ?`
	c, err := scanCourse(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("course %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	sections, err := r.listSections(ctx, id)
	if err != nil {
		return nil, err
	}
	classes := NewSQLiteClassRepo(r.db)
	for i := range sections {
		if sections[i].Classes, err = classes.ListBySection(ctx, sections[i].ID); err != nil {
			return nil, err
		}
	}
	c.Sections = sections
	return c, nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT id, course_name, course_type, holokai, eil_level FROM courses ORDER BY course_name, id`
	return r.listCourses(ctx, query)
}

func (r *SQLiteCourseRepo) ListByType(ctx context.Context, typ domain.CourseType) ([]*domain.Course, error) {
	query := `SELECT id, course_name, course_type, holokai, eil_level FROM courses
		WHERE course_type = ? ORDER BY course_name, id`
	return r.listCourses(ctx, query, string(typ))
}

// Delete removes the course with its sections and class links. Classes stay
// in the catalog.
func (r *SQLiteCourseRepo) Delete(ctx context.Context, id int64) error {
	stmts := []string{
		`DELETE FROM classes_in_course WHERE course_id = ?`,
		`DELETE FROM course_sections WHERE course_id = ?`,
		`DELETE FROM courses WHERE id = ?`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("deleting course %d: %w", id, err)
		}
	}
	return nil
}

func (r *SQLiteCourseRepo) listCourses(ctx context.Context, query string, args ...any) ([]*domain.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) listSections(ctx context.Context, courseID int64) ([]domain.Section, error) {
	query := `SELECT id, course_id, section_name, is_required, credits_needed_to_take, display_order
		FROM course_sections WHERE course_id = ? ORDER BY display_order, id`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var s domain.Section
		var required int
		if err := rows.Scan(&s.ID, &s.CourseID, &s.Name, &required, &s.CreditsNeeded, &s.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		s.Required = intToBool(required)
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return sections, nil
}

func scanCourse(s rowScanner) (*domain.Course, error) {
	var c domain.Course
	var typ string
	if err := s.Scan(&c.ID, &c.Name, &typ, &c.Holokai, &c.EILLevel); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	c.Type = domain.CourseType(typ)
	return &c, nil
}
