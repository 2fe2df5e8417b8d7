package importer

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// Catalog is a converted catalog ready for persistence.
type Catalog struct {
	Classes []domain.Class
	Courses []*domain.Course
}

// Convert transforms a validated CatalogSchema into domain records.
// Call ValidateCatalogSchema first; Convert assumes the schema is valid.
func Convert(schema *CatalogSchema) (*Catalog, error) {
	out := &Catalog{Classes: make([]domain.Class, 0, len(schema.Classes))}
	byID := make(map[int64]domain.Class, len(schema.Classes))

	for _, ci := range schema.Classes {
		offered := make([]domain.Season, 0, len(ci.SemestersOffered))
		for _, s := range ci.SemestersOffered {
			season, err := domain.ParseSeason(s)
			if err != nil {
				return nil, fmt.Errorf("class %d: %w", ci.ID, err)
			}
			if !slices.Contains(offered, season) {
				offered = append(offered, season)
			}
		}
		c := domain.Class{
			ID:             ci.ID,
			Number:         ci.Number,
			Name:           ci.Name,
			Credits:        ci.Credits,
			Offered:        offered,
			Prerequisites:  slices.Clone(ci.Prerequisites),
			Corequisites:   slices.Clone(ci.Corequisites),
			SeniorStanding: ci.SeniorClass,
			Restrictions:   ci.Restrictions,
			Description:    ci.Description,
			DaysOffered:    slices.Clone(ci.DaysOffered),
			TimesOffered:   slices.Clone(ci.TimesOffered),
		}
		out.Classes = append(out.Classes, c)
		byID[c.ID] = c
	}

	for _, co := range schema.Courses {
		course := &domain.Course{
			ID:       co.ID,
			Name:     co.Name,
			Type:     domain.CourseType(co.Type),
			Holokai:  co.Holokai,
			EILLevel: co.EILLevel,
		}
		for i, si := range co.Sections {
			section := domain.Section{
				ID:            si.ID,
				CourseID:      co.ID,
				Name:          si.Name,
				Required:      si.IsRequired(),
				CreditsNeeded: si.CreditsNeeded,
				DisplayOrder:  domain.PositiveOr(i+1, si.DisplayOrder),
			}
			for _, id := range si.Classes {
				c, ok := byID[id]
				if !ok {
					return nil, fmt.Errorf("section %q: class %d not found", si.Name, id)
				}
				section.Classes = append(section.Classes, c.Clone())
			}
			course.Sections = append(course.Sections, section)
		}
		slices.SortStableFunc(course.Sections, func(a, b domain.Section) int {
			return a.DisplayOrder - b.DisplayOrder
		})
		out.Courses = append(out.Courses, course)
	}

	return out, nil
}
