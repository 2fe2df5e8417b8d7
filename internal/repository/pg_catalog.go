package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgClassColumns = `cl.id, cl.class_number, COALESCE(cl.class_name, ''), cl.credits::int,
	COALESCE(cl.semesters_offered, '{}')::text[],
	COALESCE(cl.prerequisites, '{}')::int8[],
	COALESCE(cl.corequisites, '{}')::int8[],
	COALESCE(cl.days_offered, '{}')::text[],
	COALESCE(cl.times_offered, '{}')::text[],
	COALESCE(cl.is_senior_class, false),
	COALESCE(cl.restrictions, ''),
	COALESCE(cl.description, '')`

const pgGetClass = `SELECT ` + pgClassColumns + ` FROM classes cl WHERE cl.id = $1`

const pgGetCourse = `SELECT id, course_name, LOWER(course_type), COALESCE(holokai, '') FROM courses WHERE id = $1`

const pgListSections = `SELECT id, course_id, section_name, COALESCE(is_required, true),
	COALESCE(credits_needed_to_take, 0)::int, COALESCE(display_order, 999999)::int
	FROM course_sections WHERE course_id = $1
	ORDER BY COALESCE(display_order, 999999), id`

const pgListCourseClasses = `SELECT cic.section_id, ` + pgClassColumns + `
	FROM classes_in_course cic
	JOIN classes cl ON cl.id = cic.class_id
	WHERE cic.course_id = $1
	ORDER BY cic.section_id, cl.id`

const pgListCourses = `SELECT id, course_name, LOWER(course_type), COALESCE(holokai, '') FROM courses`

// PGCatalog reads the catalog from a PostgreSQL database laid out as
// courses / course_sections / classes / classes_in_course, with requisites
// stored as integer arrays on the class row.
type PGCatalog struct {
	pool *pgxpool.Pool
}

// NewPGCatalog connects a pool to dsn and verifies it with a ping.
func NewPGCatalog(ctx context.Context, dsn string) (*PGCatalog, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to catalog database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging catalog database: %w", err)
	}
	return &PGCatalog{pool: pool}, nil
}

// Close releases the pool.
func (p *PGCatalog) Close() {
	p.pool.Close()
}

func (p *PGCatalog) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	c, err := scanPGCourse(p.pool.QueryRow(ctx, pgGetCourse, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("course %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	rows, err := p.pool.Query(ctx, pgListSections, id)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	index := make(map[int64]int)
	for rows.Next() {
		var s domain.Section
		if err := rows.Scan(&s.ID, &s.CourseID, &s.Name, &s.Required, &s.CreditsNeeded, &s.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		index[s.ID] = len(c.Sections)
		c.Sections = append(c.Sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}

	classRows, err := p.pool.Query(ctx, pgListCourseClasses, id)
	if err != nil {
		return nil, fmt.Errorf("listing course classes: %w", err)
	}
	defer classRows.Close()

	for classRows.Next() {
		var sectionID int64
		var row pgClassRow
		if err := classRows.Scan(append([]any{&sectionID}, row.dest()...)...); err != nil {
			return nil, fmt.Errorf("scanning class: %w", err)
		}
		i, ok := index[sectionID]
		if !ok {
			continue
		}
		cls, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		c.Sections[i].Classes = append(c.Sections[i].Classes, cls)
	}
	if err := classRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating course classes: %w", err)
	}
	return c, nil
}

func (p *PGCatalog) GetClass(ctx context.Context, id int64) (*domain.Class, error) {
	var row pgClassRow
	if err := p.pool.QueryRow(ctx, pgGetClass, id).Scan(row.dest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("class %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning class: %w", err)
	}
	cls, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &cls, nil
}

func (p *PGCatalog) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	return p.listCourses(ctx, pgListCourses+` ORDER BY course_name, id`)
}

func (p *PGCatalog) ListCoursesByType(ctx context.Context, typ domain.CourseType) ([]*domain.Course, error) {
	return p.listCourses(ctx, pgListCourses+` WHERE LOWER(course_type) = LOWER($1) ORDER BY course_name, id`, string(typ))
}

func (p *PGCatalog) listCourses(ctx context.Context, query string, args ...any) ([]*domain.Course, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanPGCourse(rows)
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

func scanPGCourse(s rowScanner) (*domain.Course, error) {
	var c domain.Course
	var typ string
	if err := s.Scan(&c.ID, &c.Name, &typ, &c.Holokai); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	c.Type = domain.CourseType(typ)
	if c.Type == domain.CourseEIL {
		c.EILLevel = eilLevelFromName(c.Name)
	}
	return &c, nil
}

// pgClassRow mirrors one classes row before conversion.
type pgClassRow struct {
	id           int64
	number       string
	name         string
	credits      int
	semesters    []string
	prereqs      []int64
	coreqs       []int64
	days         []string
	times        []string
	senior       bool
	restrictions string
	description  string
}

func (r *pgClassRow) dest() []any {
	return []any{&r.id, &r.number, &r.name, &r.credits, &r.semesters, &r.prereqs, &r.coreqs,
		&r.days, &r.times, &r.senior, &r.restrictions, &r.description}
}

func (r *pgClassRow) toDomain() (domain.Class, error) {
	offered, err := parseSeasons(r.semesters)
	if err != nil {
		return domain.Class{}, fmt.Errorf("class %d: %w", r.id, err)
	}
	return domain.Class{
		ID:             r.id,
		Number:         r.number,
		Name:           r.name,
		Credits:        r.credits,
		Offered:        offered,
		Prerequisites:  nilIfEmpty(r.prereqs),
		Corequisites:   nilIfEmpty(r.coreqs),
		SeniorStanding: r.senior,
		Restrictions:   r.restrictions,
		Description:    r.description,
		DaysOffered:    nilIfEmpty(r.days),
		TimesOffered:   nilIfEmpty(r.times),
	}, nil
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

var eilLevelPattern = regexp.MustCompile(`(?i)level\s*(\d)`)

// eilLevelFromName reads the track level from names such as
// "EIL Level 2"; the Postgres layout has no dedicated column.
func eilLevelFromName(name string) int {
	m := eilLevelPattern.FindStringSubmatch(name)
	if m == nil {
		if strings.HasSuffix(strings.TrimSpace(name), "2") {
			return 2
		}
		return 1
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
