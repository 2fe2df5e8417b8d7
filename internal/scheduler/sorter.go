package scheduler

import (
	"sort"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/planner"
)

// PriorityOrder returns the classes sorted by the deterministic placement
// rules:
// 1. Prerequisite fan-out over the input set: most dependents first
// 2. Category rank: major, minor, religion, eil, other, filler
// 3. Earliest offered season: Fall, Winter, Spring (never-offered last)
// 4. Class id ascending
//
// The input slice is not reordered.
func PriorityOrder(classes []domain.Class) []*domain.Class {
	fanOut := planner.DependentCounts(classes)
	ordered := make([]*domain.Class, len(classes))
	for i := range classes {
		ordered[i] = &classes[i]
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]

		// 1. Fan-out (higher first)
		if fanOut[a.ID] != fanOut[b.ID] {
			return fanOut[a.ID] > fanOut[b.ID]
		}

		// 2. Category rank
		if a.Category.Rank() != b.Category.Rank() {
			return a.Category.Rank() < b.Category.Rank()
		}

		// 3. Earliest offered season
		if ea, eb := a.EarliestSeason(), b.EarliestSeason(); ea != eb {
			return ea < eb
		}

		// 4. Id
		return a.ID < b.ID
	})
	return ordered
}
