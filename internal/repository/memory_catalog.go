package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// MemCatalog is a CatalogReader over records held in memory. It backs
// file-driven runs that skip the database, and tests.
type MemCatalog struct {
	courses map[int64]*domain.Course
	classes map[int64]domain.Class
}

// NewMemCatalog indexes the courses and every class they contain. Extra
// classes are reachable through GetClass only (for example prerequisites that
// belong to no selected course).
func NewMemCatalog(courses []*domain.Course, extra ...domain.Class) *MemCatalog {
	m := &MemCatalog{
		courses: make(map[int64]*domain.Course, len(courses)),
		classes: make(map[int64]domain.Class),
	}
	for _, c := range courses {
		m.courses[c.ID] = c
		for _, s := range c.Sections {
			for _, cls := range s.Classes {
				if _, ok := m.classes[cls.ID]; !ok {
					m.classes[cls.ID] = cls
				}
			}
		}
	}
	for _, cls := range extra {
		m.classes[cls.ID] = cls
	}
	return m
}

func (m *MemCatalog) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, ok := m.courses[id]
	if !ok {
		return nil, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	out := *c
	out.Sections = make([]domain.Section, len(c.Sections))
	for i, s := range c.Sections {
		s.Classes = cloneClasses(s.Classes)
		out.Sections[i] = s
	}
	slices.SortStableFunc(out.Sections, func(a, b domain.Section) int {
		return a.DisplayOrder - b.DisplayOrder
	})
	return &out, nil
}

func (m *MemCatalog) GetClass(ctx context.Context, id int64) (*domain.Class, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, ok := m.classes[id]
	if !ok {
		return nil, fmt.Errorf("class %d: %w", id, ErrNotFound)
	}
	cp := c.Clone()
	return &cp, nil
}

func (m *MemCatalog) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	return m.list(ctx, func(*domain.Course) bool { return true })
}

func (m *MemCatalog) ListCoursesByType(ctx context.Context, typ domain.CourseType) ([]*domain.Course, error) {
	return m.list(ctx, func(c *domain.Course) bool { return c.Type == typ })
}

func (m *MemCatalog) list(ctx context.Context, keep func(*domain.Course) bool) ([]*domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []*domain.Course
	for _, c := range m.courses {
		if keep(c) {
			header := *c
			header.Sections = nil
			out = append(out, &header)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Course) int {
		if n := strings.Compare(a.Name, b.Name); n != 0 {
			return n
		}
		return int(a.ID - b.ID)
	})
	return out, nil
}

func cloneClasses(in []domain.Class) []domain.Class {
	out := make([]domain.Class, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
