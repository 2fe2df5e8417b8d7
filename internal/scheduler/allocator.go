package scheduler

import (
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/planner"
)

// termAllocator places classes into one open term. A class is always placed
// together with its not-yet-scheduled corequisites; the bundle fits as a
// whole or is deferred as a whole.
type termAllocator struct {
	season     domain.Season
	remaining  int
	majorLimit int

	completed planner.IDSet // committed in earlier terms
	scheduled planner.IDSet // committed or placed this term
	lookup    planner.Lookup

	placed    []*domain.Class
	majors    int
	religions int
}

func newTermAllocator(season domain.Season, budget, majorLimit int, completed, scheduled planner.IDSet, lookup planner.Lookup) *termAllocator {
	return &termAllocator{
		season:     season,
		remaining:  budget,
		majorLimit: majorLimit,
		completed:  completed,
		scheduled:  scheduled,
		lookup:     lookup,
	}
}

// tryPlace places c and its corequisite bundle if every member is eligible.
// It reports whether anything was placed.
func (a *termAllocator) tryPlace(c *domain.Class) bool {
	if a.scheduled.Has(c.ID) {
		return false
	}
	bundle := a.bundle(c.ID)

	credits, majors, religions := 0, 0, 0
	for _, m := range bundle {
		if !m.OfferedIn(a.season) || !planner.IsReady(m, a.completed) {
			return false
		}
		credits += m.Credits
		switch m.Category {
		case domain.CategoryMajor:
			majors++
		case domain.CategoryReligion:
			religions++
		}
	}
	if credits > a.remaining {
		return false
	}
	if a.majorLimit > 0 && a.majors+majors > a.majorLimit {
		return false
	}
	if a.religions+religions > 1 {
		return false
	}

	for _, m := range bundle {
		a.scheduled.Add(m.ID)
		a.placed = append(a.placed, m)
	}
	a.remaining -= credits
	a.majors += majors
	a.religions += religions
	return true
}

// bundle resolves the corequisite closure of id, minus anything already
// scheduled.
func (a *termAllocator) bundle(id int64) []*domain.Class {
	var out []*domain.Class
	for _, mid := range planner.CorequisiteClosure(id, a.lookup) {
		if mid != id && a.scheduled.Has(mid) {
			continue
		}
		m, _ := a.lookup(mid)
		out = append(out, m)
	}
	return out
}

// majorLimitReached reports whether no further major class fits this term.
func (a *termAllocator) majorLimitReached() bool {
	return a.majorLimit > 0 && a.majors >= a.majorLimit
}

func (a *termAllocator) plan(term domain.Term) domain.TermPlan {
	tp := domain.TermPlan{Term: term, Classes: make([]domain.Class, len(a.placed))}
	for i, c := range a.placed {
		tp.Classes[i] = c.Clone()
		tp.TotalCredits += c.Credits
	}
	return tp
}
