package app

import (
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/planner"
	"github.com/alexanderramin/degreeplan/internal/scheduler"
)

// PlanRequest asks for a schedule built from catalog courses.
type PlanRequest struct {
	Selection planner.Selection
	// Electives maps an elective section id to the chosen class ids,
	// corequisites included.
	Electives   map[int64][]int64
	Preferences domain.Preferences
}

// ScheduleRequest asks for a schedule over an already flattened class list.
type ScheduleRequest struct {
	Classes     []domain.Class
	Preferences domain.Preferences
}

// PlanResponse is a generated schedule.
type PlanResponse struct {
	RunID       string
	Preferences domain.Preferences
	ClassCount  int
	Result      *scheduler.Result
}

// ImportResult summarizes a catalog import.
type ImportResult struct {
	CourseCount  int
	SectionCount int
	ClassCount   int
}
