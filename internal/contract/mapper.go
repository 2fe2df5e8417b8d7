package contract

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/degreeplan/internal/app"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/planner"
	"github.com/alexanderramin/degreeplan/internal/scheduler"
)

// ToDomain converts the payload. Zero-valued numeric fields and an empty
// start or approach keep the value from fallback.
func (p PreferencesPayload) ToDomain(fallback domain.Preferences) (domain.Preferences, error) {
	prefs := fallback

	if p.StartSemester != "" {
		start, err := domain.ParseTerm(p.StartSemester)
		if err != nil {
			return domain.Preferences{}, fmt.Errorf("startSemester: %w", err)
		}
		prefs.Start = start
	}
	if prefs.Start == (domain.Term{}) {
		return domain.Preferences{}, fmt.Errorf("%w: startSemester is required", scheduler.ErrInvalidPreferences)
	}

	if p.Approach != "" {
		a := domain.Approach(p.Approach)
		if a != domain.ApproachCredits && a != domain.ApproachSemester {
			return domain.Preferences{}, fmt.Errorf("%w: unknown approach %q", scheduler.ErrInvalidPreferences, p.Approach)
		}
		prefs.Approach = a
	}

	if p.MajorClassLimit < 0 || p.FallWinterCredits < 0 || p.SpringCredits < 0 || p.MaxTerms < 0 {
		return domain.Preferences{}, fmt.Errorf("%w: limits must not be negative", scheduler.ErrInvalidPreferences)
	}
	prefs.MajorClassLimit = domain.PositiveOr(prefs.MajorClassLimit, p.MajorClassLimit)
	prefs.Credits = domain.CreditLimits{
		FallWinter: domain.PositiveOr(prefs.Credits.FallWinter, p.FallWinterCredits),
		Spring:     domain.PositiveOr(prefs.Credits.Spring, p.SpringCredits),
	}
	prefs.MaxTerms = domain.PositiveOr(prefs.MaxTerms, p.MaxTerms)

	prefs.LimitFirstYear = p.LimitFirstYear
	if p.FirstYearLimits != nil {
		prefs.FirstYear = &domain.CreditLimits{
			FallWinter: domain.PositiveOr(prefs.Credits.FallWinter, p.FirstYearLimits.FallWinterCredits),
			Spring:     domain.PositiveOr(prefs.Credits.Spring, p.FirstYearLimits.SpringCredits),
		}
	}
	return prefs, nil
}

// ToDomain converts the payload; the category comes from from_course.
func (c ClassPayload) ToDomain() (domain.Class, error) {
	offered := make([]domain.Season, 0, len(c.SemestersOffered))
	for _, s := range c.SemestersOffered {
		season, err := domain.ParseSeason(s)
		if err != nil {
			return domain.Class{}, fmt.Errorf("class %d: %w", c.ID, err)
		}
		if !slices.Contains(offered, season) {
			offered = append(offered, season)
		}
	}
	return domain.Class{
		ID:             c.ID,
		Number:         c.Number,
		Name:           c.Name,
		Credits:        c.Credits,
		Offered:        offered,
		Prerequisites:  slices.Clone([]int64(c.Prerequisites)),
		Corequisites:   slices.Clone([]int64(c.Corequisites)),
		Category:       domain.ParseCategory(c.FromCourse),
		SeniorStanding: c.SeniorClass,
		Restrictions:   c.Restrictions,
		Description:    c.Description,
		DaysOffered:    slices.Clone(c.DaysOffered),
		TimesOffered:   slices.Clone(c.TimesOffered),
	}, nil
}

// ToDomain converts every class, reporting all conversion errors together.
func (r ScheduleRequest) ToDomain(fallback domain.Preferences) (app.ScheduleRequest, error) {
	prefs, err := r.Preferences.ToDomain(fallback)
	if err != nil {
		return app.ScheduleRequest{}, err
	}
	classes := make([]domain.Class, 0, len(r.Classes))
	var errs []error
	for _, cp := range r.Classes {
		c, err := cp.ToDomain()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		classes = append(classes, c)
	}
	if len(errs) > 0 {
		return app.ScheduleRequest{}, errors.Join(errs...)
	}
	return app.ScheduleRequest{Classes: classes, Preferences: prefs}, nil
}

func (r PlanRequest) ToDomain(fallback domain.Preferences) (app.PlanRequest, error) {
	prefs, err := r.Preferences.ToDomain(fallback)
	if err != nil {
		return app.PlanRequest{}, err
	}
	electives := make(map[int64][]int64, len(r.Electives))
	for section, ids := range r.Electives {
		electives[section] = slices.Clone([]int64(ids))
	}
	return app.PlanRequest{
		Selection: planner.Selection{
			MajorID:      r.MajorID,
			Minor1ID:     r.Minor1ID,
			Minor2ID:     r.Minor2ID,
			EnglishLevel: domain.EnglishLevel(r.EnglishLevel),
		},
		Electives:   electives,
		Preferences: prefs,
	}, nil
}

func FromClass(c domain.Class) ClassPayload {
	semesters := make([]string, len(c.Offered))
	for i, s := range c.Offered {
		semesters[i] = string(s)
	}
	return ClassPayload{
		ID:               c.ID,
		Number:           c.Number,
		Name:             c.Name,
		Credits:          c.Credits,
		SemestersOffered: semesters,
		Prerequisites:    idList(c.Prerequisites),
		Corequisites:     idList(c.Corequisites),
		DaysOffered:      c.DaysOffered,
		TimesOffered:     c.TimesOffered,
		SeniorClass:      c.SeniorStanding,
		Restrictions:     c.Restrictions,
		Description:      c.Description,
		FromCourse:       string(c.Category),
	}
}

func idList(ids []int64) IDList {
	if ids == nil {
		return IDList{}
	}
	return IDList(slices.Clone(ids))
}

// FromPlanResponse renders a generated schedule.
func FromPlanResponse(resp *app.PlanResponse, generatedAt time.Time) ScheduleResponse {
	approach := resp.Preferences.Approach
	if approach == "" {
		approach = domain.ApproachCredits
	}
	out := ScheduleResponse{
		Metadata: MetadataPayload{
			RunID:         resp.RunID,
			Approach:      string(approach),
			StartSemester: resp.Preferences.Start.String(),
			GeneratedAt:   generatedAt.UTC(),
		},
		Schedule: make([]TermPayload, 0, len(resp.Result.Terms)),
	}
	for _, t := range resp.Result.Terms {
		tp := TermPayload{
			Type:         string(t.Term.Season),
			Year:         t.Term.Year,
			TotalCredits: t.TotalCredits,
			Classes:      make([]ClassPayload, len(t.Classes)),
		}
		for i, c := range t.Classes {
			tp.Classes[i] = FromClass(c)
		}
		out.Schedule = append(out.Schedule, tp)
	}

	s := resp.Result.Summary
	out.Summary = SummaryPayload{
		TotalCredits:      s.TotalCredits,
		TermCount:         s.TermCount,
		Graduation:        s.Graduation,
		Shortfall:         s.Shortfall,
		CreditsByCategory: make(map[string]int, len(s.CreditsByCategory)),
		ReligionCompacted: resp.Result.ReligionCompacted,
	}
	for cat, credits := range s.CreditsByCategory {
		out.Summary.CreditsByCategory[string(cat)] = credits
	}
	return out
}

// FromCourse renders a course; sections are included when loaded.
func FromCourse(c *domain.Course) CoursePayload {
	out := CoursePayload{
		ID:       c.ID,
		Name:     c.Name,
		Type:     string(c.Type),
		Holokai:  c.Holokai,
		EILLevel: c.EILLevel,
	}
	for _, s := range c.Sections {
		sp := SectionPayload{
			ID:            s.ID,
			Name:          s.Name,
			Required:      s.Required,
			CreditsNeeded: s.CreditsNeeded,
			DisplayOrder:  s.DisplayOrder,
			Requirement:   s.RequirementText(),
			Classes:       make([]ClassPayload, len(s.Classes)),
		}
		for i, cl := range s.Classes {
			sp.Classes[i] = FromClass(cl)
		}
		out.Sections = append(out.Sections, sp)
	}
	return out
}

func FromCourses(courses []*domain.Course) []CoursePayload {
	out := make([]CoursePayload, len(courses))
	for i, c := range courses {
		out[i] = FromCourse(c)
	}
	return out
}
