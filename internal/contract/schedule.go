package contract

import "time"

// ClassPayload is the wire form of a class, using the catalog's column names.
type ClassPayload struct {
	ID               int64    `json:"id"`
	Number           string   `json:"class_number"`
	Name             string   `json:"class_name"`
	Credits          int      `json:"credits"`
	SemestersOffered []string `json:"semesters_offered"`
	Prerequisites    IDList   `json:"prerequisites"`
	Corequisites     IDList   `json:"corequisites"`
	DaysOffered      []string `json:"days_offered,omitempty"`
	TimesOffered     []string `json:"times_offered,omitempty"`
	SeniorClass      bool     `json:"is_senior_class,omitempty"`
	Restrictions     string   `json:"restrictions,omitempty"`
	Description      string   `json:"description,omitempty"`
	// FromCourse is the category label.
	FromCourse string `json:"from_course,omitempty"`
}

type CreditLimitsPayload struct {
	FallWinterCredits int `json:"fallWinterCredits,omitempty"`
	SpringCredits     int `json:"springCredits,omitempty"`
}

// PreferencesPayload carries generation constraints. Zero values fall back to
// the configured defaults.
type PreferencesPayload struct {
	StartSemester     string               `json:"startSemester"`
	Approach          string               `json:"approach,omitempty"`
	MajorClassLimit   int                  `json:"majorClassLimit,omitempty"`
	FallWinterCredits int                  `json:"fallWinterCredits,omitempty"`
	SpringCredits     int                  `json:"springCredits,omitempty"`
	LimitFirstYear    bool                 `json:"limitFirstYear,omitempty"`
	FirstYearLimits   *CreditLimitsPayload `json:"firstYearLimits,omitempty"`
	MaxTerms          int                  `json:"maxTerms,omitempty"`
}

// ScheduleRequest is the generation invocation over a flattened class list.
type ScheduleRequest struct {
	Classes     []ClassPayload     `json:"classes"`
	Preferences PreferencesPayload `json:"preferences"`
}

// PlanRequest is the generation invocation over catalog courses.
type PlanRequest struct {
	MajorID      int64              `json:"majorId"`
	Minor1ID     int64              `json:"minor1Id"`
	Minor2ID     int64              `json:"minor2Id"`
	EnglishLevel string             `json:"englishLevel,omitempty"`
	Electives    map[int64]IDList   `json:"electives,omitempty"`
	Preferences  PreferencesPayload `json:"preferences"`
}

type MetadataPayload struct {
	RunID         string    `json:"runId"`
	Approach      string    `json:"approach"`
	StartSemester string    `json:"startSemester"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

type TermPayload struct {
	Type         string         `json:"type"`
	Year         int            `json:"year"`
	TotalCredits int            `json:"totalCredits"`
	Classes      []ClassPayload `json:"classes"`
}

type SummaryPayload struct {
	TotalCredits      int            `json:"totalCredits"`
	TermCount         int            `json:"termCount"`
	Graduation        string         `json:"graduation"`
	Shortfall         int            `json:"shortfall"`
	CreditsByCategory map[string]int `json:"creditsByCategory"`
	ReligionCompacted bool           `json:"religionCompacted,omitempty"`
}

// ScheduleResponse is a successful generation.
type ScheduleResponse struct {
	Metadata MetadataPayload `json:"metadata"`
	Schedule []TermPayload   `json:"schedule"`
	Summary  SummaryPayload  `json:"summary"`
}

type SectionPayload struct {
	ID            int64          `json:"id"`
	Name          string         `json:"section_name"`
	Required      bool           `json:"is_required"`
	CreditsNeeded int            `json:"credits_needed_to_take"`
	DisplayOrder  int            `json:"display_order"`
	Requirement   string         `json:"requirement"`
	Classes       []ClassPayload `json:"classes"`
}

// CoursePayload is a catalog course. Sections are omitted in listings.
type CoursePayload struct {
	ID       int64            `json:"id"`
	Name     string           `json:"course_name"`
	Type     string           `json:"course_type"`
	Holokai  string           `json:"holokai,omitempty"`
	EILLevel int              `json:"eil_level,omitempty"`
	Sections []SectionPayload `json:"sections,omitempty"`
}
