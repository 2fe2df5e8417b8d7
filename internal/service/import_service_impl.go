package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/degreeplan/internal/app"
	"github.com/alexanderramin/degreeplan/internal/db"
	"github.com/alexanderramin/degreeplan/internal/importer"
	"github.com/alexanderramin/degreeplan/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportCatalog(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadCatalogSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportCatalogFromSchema(ctx context.Context, schema *importer.CatalogSchema) (*app.ImportResult, error) {
	return s.importSchema(ctx, schema)
}

// importSchema replaces every course in the file (sections and class links
// included) and upserts every class, in one transaction.
func (s *importService) importSchema(ctx context.Context, schema *importer.CatalogSchema) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "import-catalog", startedAt, fields, err)
	}()

	if errs := importer.ValidateCatalogSchema(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	catalog, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting catalog: %w", err)
	}

	result = &app.ImportResult{ClassCount: len(catalog.Classes), CourseCount: len(catalog.Courses)}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txClasses := repository.NewSQLiteClassRepo(tx)
		txCourses := repository.NewSQLiteCourseRepo(tx)

		for i := range catalog.Classes {
			if err := txClasses.Upsert(ctx, &catalog.Classes[i]); err != nil {
				return err
			}
		}

		for _, course := range catalog.Courses {
			if err := txCourses.Delete(ctx, course.ID); err != nil {
				return err
			}
			if err := txCourses.Create(ctx, course); err != nil {
				return err
			}
			for i := range course.Sections {
				section := &course.Sections[i]
				if err := txCourses.CreateSection(ctx, section); err != nil {
					return err
				}
				for pos, c := range section.Classes {
					if err := txCourses.AddClassToSection(ctx, course.ID, section.ID, c.ID, pos); err != nil {
						return err
					}
				}
				result.SectionCount++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing catalog: %w", err)
	}

	fields["courses"] = result.CourseCount
	fields["sections"] = result.SectionCount
	fields["classes"] = result.ClassCount
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("(%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w %s", ErrInvalidCatalog, msg)
}
