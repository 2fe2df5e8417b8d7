package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/degreeplan/internal/app"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/elective"
	"github.com/alexanderramin/degreeplan/internal/planner"
	"github.com/alexanderramin/degreeplan/internal/repository"
	"github.com/alexanderramin/degreeplan/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fallbackPrefs = domain.DefaultPreferences(domain.Term{Season: domain.SeasonFall, Year: 2025})

// --- IDList ---

func TestIDList_AcceptsNumbersAndObjects(t *testing.T) {
	var ids IDList
	require.NoError(t, json.Unmarshal([]byte(`[1, {"id": 2, "class_number": "X"}, 3]`), &ids))
	assert.Equal(t, IDList{1, 2, 3}, ids)
}

func TestIDList_Null(t *testing.T) {
	var ids IDList
	require.NoError(t, json.Unmarshal([]byte(`null`), &ids))
	assert.Empty(t, ids)
}

func TestIDList_RejectsOtherShapes(t *testing.T) {
	var ids IDList
	assert.Error(t, json.Unmarshal([]byte(`["MATH 110"]`), &ids))
	assert.Error(t, json.Unmarshal([]byte(`[{"name": "no id"}]`), &ids))
	assert.Error(t, json.Unmarshal([]byte(`{"id": 1}`), &ids))
}

func TestIDList_MarshalsAsNumbers(t *testing.T) {
	b, err := json.Marshal(FromClass(domain.Class{ID: 5, Prerequisites: []int64{1, 2}}))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"prerequisites":[1,2]`)
	assert.Contains(t, string(b), `"corequisites":[]`)
}

// --- Preferences ---

func TestPreferencesToDomain_FallsBack(t *testing.T) {
	prefs, err := PreferencesPayload{}.ToDomain(fallbackPrefs)
	require.NoError(t, err)
	assert.Equal(t, fallbackPrefs, prefs)
}

func TestPreferencesToDomain_Overrides(t *testing.T) {
	p := PreferencesPayload{
		StartSemester:     "Winter 2026",
		Approach:          "semester-based",
		MajorClassLimit:   2,
		FallWinterCredits: 15,
		LimitFirstYear:    true,
		FirstYearLimits:   &CreditLimitsPayload{SpringCredits: 6},
	}
	prefs, err := p.ToDomain(fallbackPrefs)
	require.NoError(t, err)

	assert.Equal(t, domain.Term{Season: domain.SeasonWinter, Year: 2026}, prefs.Start)
	assert.Equal(t, domain.ApproachSemester, prefs.Approach)
	assert.Equal(t, 2, prefs.MajorClassLimit)
	assert.Equal(t, domain.CreditLimits{FallWinter: 15, Spring: domain.DefaultSpringCredits}, prefs.Credits)
	assert.True(t, prefs.LimitFirstYear)
	require.NotNil(t, prefs.FirstYear)
	assert.Equal(t, domain.CreditLimits{FallWinter: 15, Spring: 6}, *prefs.FirstYear)
}

func TestPreferencesToDomain_Errors(t *testing.T) {
	tests := []struct {
		name   string
		p      PreferencesPayload
		target error
	}{
		{"bad start", PreferencesPayload{StartSemester: "Summer 2025"}, domain.ErrInvalidTerm},
		{"bad approach", PreferencesPayload{Approach: "fastest"}, scheduler.ErrInvalidPreferences},
		{"negative limit", PreferencesPayload{MajorClassLimit: -1}, scheduler.ErrInvalidPreferences},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.p.ToDomain(fallbackPrefs)
			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, CodeInvalidInput, CodeFor(err))
		})
	}

	_, err := PreferencesPayload{}.ToDomain(domain.Preferences{})
	assert.ErrorIs(t, err, scheduler.ErrInvalidPreferences, "no start anywhere")
}

// --- Requests ---

const scheduleJSON = `{
  "classes": [
    {"id": 1, "class_number": "MATH 110", "credits": 3, "semesters_offered": ["Fall", "winter"], "from_course": "minor1"},
    {"id": 2, "class_number": "MATH 111", "credits": 3, "semesters_offered": ["Fall"],
     "prerequisites": [{"id": 1, "class_number": "MATH 110"}], "from_course": "core"}
  ],
  "preferences": {"startSemester": "Fall 2025", "majorClassLimit": 2}
}`

func TestScheduleRequest_Decode(t *testing.T) {
	var req ScheduleRequest
	require.NoError(t, json.Unmarshal([]byte(scheduleJSON), &req))

	got, err := req.ToDomain(fallbackPrefs)
	require.NoError(t, err)
	require.Len(t, got.Classes, 2)
	assert.Equal(t, domain.CategoryMinor, got.Classes[0].Category)
	assert.Equal(t, []domain.Season{domain.SeasonFall, domain.SeasonWinter}, got.Classes[0].Offered)
	assert.Equal(t, domain.CategoryFiller, got.Classes[1].Category)
	assert.Equal(t, []int64{1}, got.Classes[1].Prerequisites)
	assert.Equal(t, 2, got.Preferences.MajorClassLimit)
}

func TestScheduleRequest_CollectsClassErrors(t *testing.T) {
	req := ScheduleRequest{
		Classes: []ClassPayload{
			{ID: 1, SemestersOffered: []string{"Summer"}},
			{ID: 2, SemestersOffered: []string{"Autumn"}},
		},
	}
	_, err := req.ToDomain(fallbackPrefs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class 1")
	assert.Contains(t, err.Error(), "class 2")
	assert.Equal(t, CodeInvalidInput, CodeFor(err))
}

func TestPlanRequest_ToDomain(t *testing.T) {
	var req PlanRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"majorId": 1, "minor1Id": 2, "minor2Id": 3, "englishLevel": "fluent",
		"electives": {"101": [3, {"id": 4}]},
		"preferences": {}
	}`), &req))

	got, err := req.ToDomain(fallbackPrefs)
	require.NoError(t, err)
	assert.Equal(t, planner.Selection{MajorID: 1, Minor1ID: 2, Minor2ID: 3, EnglishLevel: domain.EnglishFluent}, got.Selection)
	assert.Equal(t, map[int64][]int64{101: {3, 4}}, got.Electives)
}

// --- Errors ---

func TestCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorCode
	}{
		{fmt.Errorf("wrapped: %w", planner.ErrInvalidSelection), CodeInvalidInput},
		{planner.ErrMissingReference, CodeInvalidInput},
		{scheduler.ErrInvalidClass, CodeInvalidInput},
		{fmt.Errorf("section 101 (Upper Electives): %w", elective.ErrPolicyUnmet), CodeInvalidInput},
		{fmt.Errorf("%w classes[0].credits", app.ErrInvalidCatalog), CodeInvalidInput},
		{&scheduler.StallError{}, CodeUnsatisfiable},
		{fmt.Errorf("x: %w", scheduler.ErrIterationCeiling), CodeUnsatisfiable},
		{fmt.Errorf("x: %w", app.ErrCatalogTimeout), CodeTimeout},
		{fmt.Errorf("course 9: %w", repository.ErrNotFound), CodeNotFound},
		{errors.New("disk on fire"), CodeInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CodeFor(tt.err), tt.err.Error())
	}
}

func TestNewErrorResponse_StallDetails(t *testing.T) {
	err := &scheduler.StallError{Term: domain.Term{Season: domain.SeasonWinter, Year: 2026}, Remaining: []int64{4, 7}}

	resp := NewErrorResponse(err)
	assert.Equal(t, CodeUnsatisfiable, resp.Code)
	assert.Equal(t, "Winter 2026", resp.Term)
	assert.Equal(t, []int64{4, 7}, resp.Remaining)
}

// --- Responses ---

func TestFromPlanResponse(t *testing.T) {
	fall := domain.Term{Season: domain.SeasonFall, Year: 2025}
	terms := []domain.TermPlan{{
		Term:         fall,
		TotalCredits: 3,
		Classes: []domain.Class{{
			ID: 1, Number: "MATH 110", Credits: 3,
			Offered: []domain.Season{domain.SeasonFall}, Category: domain.CategoryMajor,
		}},
	}}
	resp := &app.PlanResponse{
		RunID:       "run-1",
		Preferences: fallbackPrefs,
		Result:      &scheduler.Result{Terms: terms, Summary: scheduler.Summarize(terms)},
	}
	generated := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	out := FromPlanResponse(resp, generated)

	assert.Equal(t, "run-1", out.Metadata.RunID)
	assert.Equal(t, "credits-based", out.Metadata.Approach)
	assert.Equal(t, "Fall 2025", out.Metadata.StartSemester)
	require.Len(t, out.Schedule, 1)
	assert.Equal(t, "Fall", out.Schedule[0].Type)
	assert.Equal(t, 2025, out.Schedule[0].Year)
	assert.Equal(t, "major", out.Schedule[0].Classes[0].FromCourse)
	assert.Equal(t, "Fall 2025", out.Summary.Graduation)
	assert.Equal(t, 121, out.Summary.Shortfall)
	assert.Equal(t, map[string]int{"major": 3}, out.Summary.CreditsByCategory)
}

func TestFromCourse(t *testing.T) {
	c := &domain.Course{
		ID: 3, Name: "History", Type: domain.CourseMinor,
		Sections: []domain.Section{{ID: 30, Name: "Topics", CreditsNeeded: 6}},
	}
	out := FromCourse(c)
	require.Len(t, out.Sections, 1)
	assert.Equal(t, "Take a total of 6 credits", out.Sections[0].Requirement)

	out = FromCourse(&domain.Course{ID: 4, Name: "Bare"})
	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "sections")
}
