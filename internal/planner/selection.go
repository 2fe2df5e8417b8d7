package planner

import (
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// ValidateSelectionIDs checks the id-level shape of a selection before any
// catalog access.
func ValidateSelectionIDs(sel Selection) error {
	if sel.MajorID <= 0 {
		return fmt.Errorf("%w: a major is required", ErrInvalidSelection)
	}
	if sel.Minor1ID <= 0 || sel.Minor2ID <= 0 {
		return fmt.Errorf("%w: two minors are required", ErrInvalidSelection)
	}
	if sel.MajorID == sel.Minor1ID || sel.MajorID == sel.Minor2ID || sel.Minor1ID == sel.Minor2ID {
		return fmt.Errorf("%w: major and minors must be distinct courses", ErrInvalidSelection)
	}
	if sel.EnglishLevel != "" && !domain.ValidEnglishLevels[string(sel.EnglishLevel)] {
		return fmt.Errorf("%w: unknown English level %q", ErrInvalidSelection, sel.EnglishLevel)
	}
	return nil
}

// ValidateSelection checks course types and Holokai distinctness once the
// courses are loaded. Empty Holokai values are not compared.
func ValidateSelection(major, minor1, minor2 *domain.Course) error {
	if major.Type != domain.CourseMajor {
		return fmt.Errorf("%w: course %d (%s) is not a major", ErrInvalidSelection, major.ID, major.Name)
	}
	for _, m := range []*domain.Course{minor1, minor2} {
		if m.Type != domain.CourseMinor {
			return fmt.Errorf("%w: course %d (%s) is not a minor", ErrInvalidSelection, m.ID, m.Name)
		}
	}

	seen := make(map[string]string, 3)
	for _, c := range []*domain.Course{major, minor1, minor2} {
		if c.Holokai == "" {
			continue
		}
		if other, dup := seen[c.Holokai]; dup {
			return fmt.Errorf("%w: %s and %s share holokai %q", ErrInvalidSelection, other, c.Name, c.Holokai)
		}
		seen[c.Holokai] = c.Name
	}
	return nil
}
