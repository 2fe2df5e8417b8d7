package testutil

import (
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// Class options
type ClassOption func(*domain.Class)

func WithCredits(n int) ClassOption {
	return func(c *domain.Class) {
		c.Credits = n
	}
}

func WithOffered(seasons ...domain.Season) ClassOption {
	return func(c *domain.Class) {
		c.Offered = seasons
	}
}

func WithPrereqs(ids ...int64) ClassOption {
	return func(c *domain.Class) {
		c.Prerequisites = ids
	}
}

func WithCoreqs(ids ...int64) ClassOption {
	return func(c *domain.Class) {
		c.Corequisites = ids
	}
}

func WithCategory(cat domain.Category) ClassOption {
	return func(c *domain.Class) {
		c.Category = cat
	}
}

func WithClassName(name string) ClassOption {
	return func(c *domain.Class) {
		c.Name = name
	}
}

// NewTestClass returns a 3-credit major class offered every season.
func NewTestClass(id int64, number string, opts ...ClassOption) domain.Class {
	c := domain.Class{
		ID:       id,
		Number:   number,
		Name:     fmt.Sprintf("Test Class %d", id),
		Credits:  3,
		Offered:  []domain.Season{domain.SeasonFall, domain.SeasonWinter, domain.SeasonSpring},
		Category: domain.CategoryMajor,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Course options
type CourseOption func(*domain.Course)

func WithHolokai(h string) CourseOption {
	return func(c *domain.Course) {
		c.Holokai = h
	}
}

func WithEILLevel(level int) CourseOption {
	return func(c *domain.Course) {
		c.EILLevel = level
	}
}

func WithSections(sections ...domain.Section) CourseOption {
	return func(c *domain.Course) {
		for i := range sections {
			sections[i].CourseID = c.ID
			if sections[i].DisplayOrder == 0 {
				sections[i].DisplayOrder = i + 1
			}
		}
		c.Sections = sections
	}
}

func NewTestCourse(id int64, name string, typ domain.CourseType, opts ...CourseOption) *domain.Course {
	c := &domain.Course{
		ID:   id,
		Name: name,
		Type: typ,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequiredSection builds a required section over classes.
func RequiredSection(id int64, name string, classes ...domain.Class) domain.Section {
	return domain.Section{ID: id, Name: name, Required: true, Classes: classes}
}

// ElectiveSection builds an elective section with a credit target.
func ElectiveSection(id int64, name string, creditsNeeded int, classes ...domain.Class) domain.Section {
	return domain.Section{ID: id, Name: name, CreditsNeeded: creditsNeeded, Classes: classes}
}
