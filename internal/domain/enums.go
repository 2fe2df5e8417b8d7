package domain

import (
	"fmt"
	"strings"
)

// Season is one slot of the academic calendar cycle.
type Season string

const (
	SeasonFall   Season = "Fall"
	SeasonWinter Season = "Winter"
	SeasonSpring Season = "Spring"
)

// Seasons lists the cyclic order Fall -> Winter -> Spring.
var Seasons = []Season{SeasonFall, SeasonWinter, SeasonSpring}

// Index returns the position of s in the cyclic order, or -1 if unknown.
func (s Season) Index() int {
	switch s {
	case SeasonFall:
		return 0
	case SeasonWinter:
		return 1
	case SeasonSpring:
		return 2
	default:
		return -1
	}
}

// ParseSeason accepts a season name in any letter case.
func ParseSeason(s string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fall":
		return SeasonFall, nil
	case "winter":
		return SeasonWinter, nil
	case "spring":
		return SeasonSpring, nil
	}
	return "", fmt.Errorf("%w: unknown season %q", ErrInvalidTerm, s)
}

// Category labels where a class came from. It drives placement priority and
// the per-term limits.
type Category string

const (
	CategoryMajor    Category = "major"
	CategoryMinor    Category = "minor"
	CategoryReligion Category = "religion"
	CategoryEIL      Category = "eil"
	CategoryFiller   Category = "filler"
	CategoryOther    Category = "other"
)

// Rank orders categories for tie-breaking: lower ranks place first.
func (c Category) Rank() int {
	switch c {
	case CategoryMajor:
		return 0
	case CategoryMinor:
		return 1
	case CategoryReligion:
		return 2
	case CategoryEIL:
		return 3
	case CategoryFiller:
		return 5
	default:
		return 4
	}
}

// ParseCategory maps a category label (or one of its aliases) to a Category.
// Unknown non-empty labels map to CategoryOther.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return CategoryMajor
	case "minor", "minor1", "minor2":
		return CategoryMinor
	case "religion":
		return CategoryReligion
	case "eil", "english", "english-proficiency":
		return CategoryEIL
	case "filler", "core", "elective-filler":
		return CategoryFiller
	default:
		return CategoryOther
	}
}

// CourseType is the catalog classification of a course.
type CourseType string

const (
	CourseMajor    CourseType = "major"
	CourseMinor    CourseType = "minor"
	CourseReligion CourseType = "religion"
	CourseEIL      CourseType = "eil"
	CourseCore     CourseType = "core"
)

// ValidCourseTypes is the canonical set of accepted course type strings.
var ValidCourseTypes = map[string]bool{
	"major": true, "minor": true, "religion": true, "eil": true, "core": true,
}

// Approach selects how credit caps are resolved for a generation run.
type Approach string

const (
	ApproachCredits  Approach = "credits-based"
	ApproachSemester Approach = "semester-based"
)

// EnglishLevel selects which English-proficiency track is added to a plan.
type EnglishLevel string

const (
	EnglishLevel1 EnglishLevel = "academic-english-1"
	EnglishLevel2 EnglishLevel = "academic-english-2"
	EnglishFluent EnglishLevel = "fluent"
)

// ValidEnglishLevels is the canonical set of accepted English level strings.
var ValidEnglishLevels = map[string]bool{
	"academic-english-1": true, "academic-english-2": true, "fluent": true,
}
