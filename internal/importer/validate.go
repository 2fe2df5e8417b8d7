package importer

import (
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/planner"
)

// ValidateCatalogSchema checks the catalog for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateCatalogSchema(schema *CatalogSchema) []error {
	var errs []error

	classIDs := make(map[int64]bool)
	errs = append(errs, validateClasses(schema.Classes, classIDs)...)
	errs = append(errs, validateRequisites(schema.Classes, classIDs)...)
	errs = append(errs, validateCourses(schema.Courses, classIDs)...)

	return errs
}

func validateClasses(classes []ClassImport, classIDs map[int64]bool) []error {
	var errs []error

	for i, c := range classes {
		prefix := fmt.Sprintf("classes[%d]", i)

		if c.ID <= 0 {
			errs = append(errs, fmt.Errorf("%s.id must be positive", prefix))
		} else if classIDs[c.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %d", prefix, c.ID))
		} else {
			classIDs[c.ID] = true
		}

		if c.Number == "" {
			errs = append(errs, fmt.Errorf("%s.class_number is required", prefix))
		}
		if c.Credits <= 0 {
			errs = append(errs, fmt.Errorf("%s.credits must be positive", prefix))
		}
		if len(c.SemestersOffered) == 0 {
			errs = append(errs, fmt.Errorf("%s.semesters_offered is required", prefix))
		}
		for j, s := range c.SemestersOffered {
			if _, err := domain.ParseSeason(s); err != nil {
				errs = append(errs, fmt.Errorf("%s.semesters_offered[%d]: invalid value %q", prefix, j, s))
			}
		}
	}

	return errs
}

func validateRequisites(classes []ClassImport, classIDs map[int64]bool) []error {
	var errs []error

	graph := make([]domain.Class, 0, len(classes))
	for i, c := range classes {
		prefix := fmt.Sprintf("classes[%d]", i)
		for _, p := range c.Prerequisites {
			if p == c.ID {
				errs = append(errs, fmt.Errorf("%s.prerequisites: class %d lists itself", prefix, c.ID))
			} else if !classIDs[p] {
				errs = append(errs, fmt.Errorf("%s.prerequisites: class %d not found in classes", prefix, p))
			}
		}
		for _, co := range c.Corequisites {
			if co == c.ID {
				errs = append(errs, fmt.Errorf("%s.corequisites: class %d lists itself", prefix, c.ID))
			} else if !classIDs[co] {
				errs = append(errs, fmt.Errorf("%s.corequisites: class %d not found in classes", prefix, co))
			}
		}
		graph = append(graph, domain.Class{ID: c.ID, Prerequisites: c.Prerequisites})
	}

	if len(errs) == 0 {
		if cycle := planner.FindCycle(graph); len(cycle) > 0 {
			errs = append(errs, fmt.Errorf("circular prerequisites involving classes %v", cycle))
		}
	}
	return errs
}

func validateCourses(courses []CourseImport, classIDs map[int64]bool) []error {
	var errs []error

	courseIDs := make(map[int64]bool)
	sectionIDs := make(map[int64]bool)
	for i, c := range courses {
		prefix := fmt.Sprintf("courses[%d]", i)

		if c.ID <= 0 {
			errs = append(errs, fmt.Errorf("%s.id must be positive", prefix))
		} else if courseIDs[c.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %d", prefix, c.ID))
		} else {
			courseIDs[c.ID] = true
		}

		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.course_name is required", prefix))
		}
		if c.Type == "" {
			errs = append(errs, fmt.Errorf("%s.course_type is required", prefix))
		} else if !domain.ValidCourseTypes[c.Type] {
			errs = append(errs, fmt.Errorf("%s.course_type: invalid value %q", prefix, c.Type))
		}

		switch {
		case c.Type == string(domain.CourseEIL) && c.EILLevel != 1 && c.EILLevel != 2:
			errs = append(errs, fmt.Errorf("%s.eil_level must be 1 or 2 for an eil course", prefix))
		case c.Type != string(domain.CourseEIL) && c.EILLevel != 0:
			errs = append(errs, fmt.Errorf("%s.eil_level is only valid for eil courses", prefix))
		}

		for j, s := range c.Sections {
			errs = append(errs, validateSection(fmt.Sprintf("%s.sections[%d]", prefix, j), s, sectionIDs, classIDs)...)
		}
	}

	return errs
}

func validateSection(prefix string, s SectionImport, sectionIDs, classIDs map[int64]bool) []error {
	var errs []error

	if s.ID <= 0 {
		errs = append(errs, fmt.Errorf("%s.id must be positive", prefix))
	} else if sectionIDs[s.ID] {
		errs = append(errs, fmt.Errorf("%s.id: duplicate id %d", prefix, s.ID))
	} else {
		sectionIDs[s.ID] = true
	}

	if s.Name == "" {
		errs = append(errs, fmt.Errorf("%s.section_name is required", prefix))
	}
	if !s.IsRequired() && s.CreditsNeeded <= 0 {
		errs = append(errs, fmt.Errorf("%s.credits_needed_to_take must be positive for an elective section", prefix))
	}
	if s.CreditsNeeded < 0 {
		errs = append(errs, fmt.Errorf("%s.credits_needed_to_take must not be negative", prefix))
	}

	seen := make(map[int64]bool, len(s.Classes))
	for _, id := range s.Classes {
		if !classIDs[id] {
			errs = append(errs, fmt.Errorf("%s.classes: class %d not found in classes", prefix, id))
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("%s.classes: class %d listed twice", prefix, id))
		}
		seen[id] = true
	}

	return errs
}
