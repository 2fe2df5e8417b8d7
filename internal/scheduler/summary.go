package scheduler

import (
	"github.com/alexanderramin/degreeplan/internal/domain"
)

// DegreeCreditTarget is the credit total a bachelor's degree requires.
const DegreeCreditTarget = 124

// Summary aggregates a generated schedule.
type Summary struct {
	TotalCredits int
	TermCount    int
	// Graduation is the label of the last term, empty for an empty schedule.
	Graduation string
	// Shortfall is how many elective credits remain to reach
	// DegreeCreditTarget; never negative.
	Shortfall         int
	CreditsByCategory map[domain.Category]int
}

// Summarize computes totals over terms without modifying them.
func Summarize(terms []domain.TermPlan) Summary {
	s := Summary{
		TermCount:         len(terms),
		CreditsByCategory: make(map[domain.Category]int),
	}
	for _, t := range terms {
		for _, c := range t.Classes {
			s.TotalCredits += c.Credits
			s.CreditsByCategory[c.Category] += c.Credits
		}
	}
	if len(terms) > 0 {
		s.Graduation = terms[len(terms)-1].Term.String()
	}
	if s.TotalCredits < DegreeCreditTarget {
		s.Shortfall = DegreeCreditTarget - s.TotalCredits
	}
	return s
}
