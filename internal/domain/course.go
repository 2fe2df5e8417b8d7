package domain

import "fmt"

// Course is a catalog program (major, minor, religion requirement, English
// track or core) made of ordered sections.
type Course struct {
	ID       int64
	Name     string
	Type     CourseType
	Holokai  string
	EILLevel int // 1 or 2 for English-proficiency tracks, 0 otherwise
	Sections []Section
}

// Section groups classes within a course. Required sections contribute every
// class; elective sections require a credit-target selection.
type Section struct {
	ID            int64
	CourseID      int64
	Name          string
	Required      bool
	CreditsNeeded int
	DisplayOrder  int
	Classes       []Class
}

// ElectiveSections returns the course's non-required sections in order.
func (c *Course) ElectiveSections() []Section {
	var out []Section
	for _, s := range c.Sections {
		if !s.Required {
			out = append(out, s)
		}
	}
	return out
}

// HasClass reports whether the section lists the class id.
func (s *Section) HasClass(id int64) bool {
	for _, c := range s.Classes {
		if c.ID == id {
			return true
		}
	}
	return false
}

// UniformCredits returns the shared credit value when every class in the
// section carries the same credits.
func (s *Section) UniformCredits() (int, bool) {
	if len(s.Classes) == 0 {
		return 0, false
	}
	first := s.Classes[0].Credits
	for _, c := range s.Classes[1:] {
		if c.Credits != first {
			return 0, false
		}
	}
	return first, first > 0
}

// RequirementText describes the section requirement for display.
func (s *Section) RequirementText() string {
	if s.Required {
		return "Required"
	}
	return fmt.Sprintf("Take a total of %d credits", s.CreditsNeeded)
}
