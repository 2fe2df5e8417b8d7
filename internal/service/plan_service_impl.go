package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/degreeplan/internal/app"
	"github.com/alexanderramin/degreeplan/internal/contract"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/planner"
	"github.com/alexanderramin/degreeplan/internal/repository"
	"github.com/alexanderramin/degreeplan/internal/scheduler"
	"github.com/google/uuid"
)

// DefaultFetchTimeout bounds catalog loading for one plan.
const DefaultFetchTimeout = 30 * time.Second

type planService struct {
	catalog      repository.CatalogReader
	fetchTimeout time.Duration
	observer     UseCaseObserver
}

func NewPlanService(
	catalog repository.CatalogReader,
	fetchTimeout time.Duration,
	observers ...UseCaseObserver,
) PlanService {
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	return &planService{
		catalog:      catalog,
		fetchTimeout: fetchTimeout,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req app.PlanRequest) (resp *app.PlanResponse, err error) {
	runID := uuid.NewString()
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"run_id":        runID,
		"major_id":      req.Selection.MajorID,
		"english_level": string(req.Selection.EnglishLevel),
	}
	defer func() {
		observe(ctx, s.observer, "plan", startedAt, fields, err)
	}()

	set, err := s.buildClassSet(ctx, req)
	if err != nil {
		fields["failure"] = failureLabel(err)
		return nil, err
	}
	return s.generate(runID, set.Classes, req.Preferences, fields)
}

func (s *planService) Schedule(ctx context.Context, req app.ScheduleRequest) (resp *app.PlanResponse, err error) {
	runID := uuid.NewString()
	startedAt := time.Now().UTC()
	fields := map[string]any{"run_id": runID}
	defer func() {
		observe(ctx, s.observer, "schedule", startedAt, fields, err)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	return s.generate(runID, req.Classes, req.Preferences, fields)
}

// buildClassSet loads the selected and auxiliary courses under the fetch
// deadline and flattens them.
func (s *planService) buildClassSet(ctx context.Context, req app.PlanRequest) (*planner.ClassSet, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	breq := planner.BuildRequest{Selection: req.Selection, Electives: req.Electives}
	var err error
	if breq.ReligionCourseIDs, err = s.courseIDsOfType(fetchCtx, domain.CourseReligion); err != nil {
		return nil, s.fetchError(ctx, fetchCtx, err)
	}
	if breq.EILCourseIDs, err = s.courseIDsOfType(fetchCtx, domain.CourseEIL); err != nil {
		return nil, s.fetchError(ctx, fetchCtx, err)
	}
	if breq.FillerCourseIDs, err = s.courseIDsOfType(fetchCtx, domain.CourseCore); err != nil {
		return nil, s.fetchError(ctx, fetchCtx, err)
	}

	set, err := planner.NewBuilder(s.catalog).Build(fetchCtx, breq)
	if err != nil {
		return nil, s.fetchError(ctx, fetchCtx, err)
	}
	return set, nil
}

func (s *planService) courseIDsOfType(ctx context.Context, typ domain.CourseType) ([]int64, error) {
	courses, err := s.catalog.ListCoursesByType(ctx, typ)
	if err != nil {
		return nil, fmt.Errorf("listing %s courses: %w", typ, err)
	}
	ids := make([]int64, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids, nil
}

// fetchError maps a deadline hit on the fetch context, but not on the
// caller's, to ErrCatalogTimeout.
func (s *planService) fetchError(parent, fetchCtx context.Context, err error) error {
	if parent.Err() == nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(fetchCtx.Err(), context.DeadlineExceeded)) {
		return fmt.Errorf("%w after %s: %v", ErrCatalogTimeout, s.fetchTimeout, err)
	}
	return err
}

func (s *planService) generate(runID string, classes []domain.Class, prefs domain.Preferences, fields map[string]any) (*app.PlanResponse, error) {
	fields["classes"] = len(classes)
	if cycle := planner.FindCycle(classes); len(cycle) > 0 {
		fields["cycle_ids"] = cycle
	}

	res, err := scheduler.Generate(classes, prefs)
	if err != nil {
		fields["failure"] = failureLabel(err)
		return nil, err
	}
	fields["terms"] = len(res.Terms)
	fields["total_credits"] = res.Summary.TotalCredits
	fields["graduation"] = res.Summary.Graduation

	return &app.PlanResponse{
		RunID:       runID,
		Preferences: prefs,
		ClassCount:  len(classes),
		Result:      res,
	}, nil
}

func failureLabel(err error) string {
	switch {
	case errors.Is(err, scheduler.ErrStalled):
		return "stalled"
	case errors.Is(err, scheduler.ErrIterationCeiling):
		return "iteration_ceiling"
	case errors.Is(err, ErrCatalogTimeout):
		return "timeout"
	default:
		return string(contract.CodeFor(err))
	}
}
