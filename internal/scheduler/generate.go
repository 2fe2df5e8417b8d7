package scheduler

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/planner"
)

// eilWindow is the number of leading terms with a dedicated English pass.
const eilWindow = 4

// Result is a successful schedule.
type Result struct {
	Terms   []domain.TermPlan
	Summary Summary

	// ReligionCompacted is set when a trailing lone religion class was moved
	// into an earlier term.
	ReligionCompacted bool
}

// Generate schedules every class into consecutive terms from prefs.Start.
// It fails with ErrStalled or ErrIterationCeiling rather than returning a
// partial schedule. The input classes are never modified.
func Generate(classes []domain.Class, prefs domain.Preferences) (*Result, error) {
	pol, err := resolvePolicy(prefs)
	if err != nil {
		return nil, err
	}
	if err := validateClasses(classes); err != nil {
		return nil, err
	}

	work := make([]domain.Class, len(classes))
	for i, c := range classes {
		work[i] = c.Clone()
	}
	index := make(map[int64]*domain.Class, len(work))
	for i := range work {
		index[work[i].ID] = &work[i]
	}
	lookup := func(id int64) (*domain.Class, bool) {
		c, ok := index[id]
		return c, ok
	}

	order := PriorityOrder(work)
	completed := make(planner.IDSet, len(work))
	scheduled := make(planner.IDSet, len(work))

	var terms []domain.TermPlan
	term := prefs.Start
	eilTermsUsed := 0

	for i := 0; len(scheduled) < len(work); i++ {
		if i >= pol.maxTerms {
			return nil, fmt.Errorf("%w: %d terms without placing %d classes",
				ErrIterationCeiling, pol.maxTerms, len(work)-len(scheduled))
		}

		alloc := newTermAllocator(term.Season, pol.capFor(i, term.Season), pol.majorLimit, completed, scheduled, lookup)

		for _, c := range order {
			if c.Category == domain.CategoryReligion && alloc.tryPlace(c) {
				break
			}
		}

		eilPass := eilTermsUsed < eilWindow
		if eilPass {
			for _, c := range order {
				if c.Category == domain.CategoryEIL {
					alloc.tryPlace(c)
				}
			}
			eilTermsUsed++
		}

		for _, c := range order {
			if alloc.remaining <= 0 {
				break
			}
			switch c.Category {
			case domain.CategoryReligion:
				continue
			case domain.CategoryEIL:
				if eilPass {
					continue
				}
			case domain.CategoryMajor:
				if alloc.majorLimitReached() {
					continue
				}
			}
			alloc.tryPlace(c)
		}

		if alloc.remaining > 0 {
			for _, c := range order {
				if c.Category == domain.CategoryFiller {
					alloc.tryPlace(c)
				}
			}
		}

		if len(alloc.placed) == 0 {
			return nil, &StallError{Term: term, Remaining: unscheduledIDs(work, scheduled)}
		}

		terms = append(terms, alloc.plan(term))
		for _, c := range alloc.placed {
			completed.Add(c.ID)
		}
		term = term.Next()
	}

	res := &Result{}
	res.Terms, res.ReligionCompacted = compactReligion(terms, pol)
	res.Summary = Summarize(res.Terms)
	return res, nil
}

// validateClasses rejects inputs the scheduler cannot reason about: duplicate
// ids, dangling edges and non-positive credits.
func validateClasses(classes []domain.Class) error {
	errs := planner.ValidateEdges(classes)
	for _, c := range classes {
		if c.Credits <= 0 {
			errs = append(errs, fmt.Errorf("%w: class %d (%s) has %d credits", ErrInvalidClass, c.ID, c.Number, c.Credits))
		}
	}
	return errors.Join(errs...)
}

func unscheduledIDs(classes []domain.Class, scheduled planner.IDSet) []int64 {
	var out []int64
	for _, c := range classes {
		if !scheduled.Has(c.ID) {
			out = append(out, c.ID)
		}
	}
	slices.Sort(out)
	return out
}
