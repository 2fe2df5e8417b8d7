package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/app"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/repository"
)

type catalogService struct {
	catalog repository.CatalogReader
}

func NewCatalogService(catalog repository.CatalogReader) CatalogService {
	return &catalogService{catalog: catalog}
}

// ListCourses lists course headers, all types when typ is empty.
func (s *catalogService) ListCourses(ctx context.Context, typ domain.CourseType) ([]*domain.Course, error) {
	if typ == "" {
		return s.catalog.ListCourses(ctx)
	}
	if !domain.ValidCourseTypes[string(typ)] {
		return nil, fmt.Errorf("%w: %q", app.ErrUnknownCourseType, typ)
	}
	return s.catalog.ListCoursesByType(ctx, typ)
}

func (s *catalogService) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	return s.catalog.GetCourse(ctx, id)
}

func (s *catalogService) GetClass(ctx context.Context, id int64) (*domain.Class, error) {
	return s.catalog.GetClass(ctx, id)
}
