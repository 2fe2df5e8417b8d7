package app

import (
	"context"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/importer"
)

type PlanUseCase interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
	Schedule(ctx context.Context, req ScheduleRequest) (*PlanResponse, error)
}

type CatalogUseCase interface {
	ListCourses(ctx context.Context, typ domain.CourseType) ([]*domain.Course, error)
	GetCourse(ctx context.Context, id int64) (*domain.Course, error)
	GetClass(ctx context.Context, id int64) (*domain.Class, error)
}

type ImportCatalogUseCase interface {
	ImportCatalog(ctx context.Context, filePath string) (*ImportResult, error)
	ImportCatalogFromSchema(ctx context.Context, schema *importer.CatalogSchema) (*ImportResult, error)
}
