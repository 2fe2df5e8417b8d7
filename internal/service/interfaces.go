package service

import (
	"github.com/alexanderramin/degreeplan/internal/app"
)

// ErrCatalogTimeout is returned when the catalog fetch for a plan exceeds
// the configured deadline.
var ErrCatalogTimeout = app.ErrCatalogTimeout

// ErrInvalidCatalog is returned when an import file fails validation.
var ErrInvalidCatalog = app.ErrInvalidCatalog

type PlanService interface {
	app.PlanUseCase
}

type CatalogService interface {
	app.CatalogUseCase
}

type ImportService interface {
	app.ImportCatalogUseCase
}
