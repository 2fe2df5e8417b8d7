package repository

import (
	"context"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// CatalogReader is the read-only catalog used by planning. Every backend
// (SQLite, Postgres, in-memory) implements it.
type CatalogReader interface {
	// GetCourse returns the course with its sections and their classes,
	// sections ordered by display order.
	GetCourse(ctx context.Context, id int64) (*domain.Course, error)
	GetClass(ctx context.Context, id int64) (*domain.Class, error)
	// ListCourses returns course headers (no sections) ordered by name.
	ListCourses(ctx context.Context) ([]*domain.Course, error)
	ListCoursesByType(ctx context.Context, typ domain.CourseType) ([]*domain.Course, error)
}

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	CreateSection(ctx context.Context, s *domain.Section) error
	AddClassToSection(ctx context.Context, courseID, sectionID, classID int64, position int) error
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	ListByType(ctx context.Context, typ domain.CourseType) ([]*domain.Course, error)
	Delete(ctx context.Context, id int64) error
}

type ClassRepo interface {
	Create(ctx context.Context, c *domain.Class) error
	Upsert(ctx context.Context, c *domain.Class) error
	GetByID(ctx context.Context, id int64) (*domain.Class, error)
	ListBySection(ctx context.Context, sectionID int64) ([]domain.Class, error)
	Count(ctx context.Context) (int, error)
}
