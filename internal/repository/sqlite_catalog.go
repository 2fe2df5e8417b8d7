package repository

import (
	"context"

	"github.com/alexanderramin/degreeplan/internal/db"
	"github.com/alexanderramin/degreeplan/internal/domain"
)

// SQLiteCatalog serves CatalogReader from the embedded store.
type SQLiteCatalog struct {
	courses *SQLiteCourseRepo
	classes *SQLiteClassRepo
}

// NewSQLiteCatalog creates a catalog reader over conn.
func NewSQLiteCatalog(conn db.DBTX) *SQLiteCatalog {
	return &SQLiteCatalog{
		courses: NewSQLiteCourseRepo(conn),
		classes: NewSQLiteClassRepo(conn),
	}
}

func (c *SQLiteCatalog) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	return c.courses.GetByID(ctx, id)
}

func (c *SQLiteCatalog) GetClass(ctx context.Context, id int64) (*domain.Class, error) {
	return c.classes.GetByID(ctx, id)
}

func (c *SQLiteCatalog) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	return c.courses.List(ctx)
}

func (c *SQLiteCatalog) ListCoursesByType(ctx context.Context, typ domain.CourseType) ([]*domain.Course, error) {
	return c.courses.ListByType(ctx, typ)
}
