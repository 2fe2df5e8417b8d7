package scheduler

import (
	"github.com/alexanderramin/degreeplan/internal/domain"
)

// compactReligion folds a final term that holds a single religion class into
// the earliest earlier term that can take it: no religion class yet, offered
// that season, room under that term's cap, and strictly after every
// prerequisite's term (corequisites may share the term).
func compactReligion(terms []domain.TermPlan, pol policy) ([]domain.TermPlan, bool) {
	n := len(terms)
	if n < 2 || len(terms[n-1].Classes) != 1 {
		return terms, false
	}
	lone := terms[n-1].Classes[0]
	if lone.Category != domain.CategoryReligion {
		return terms, false
	}

	termOf := make(map[int64]int)
	for i, t := range terms[:n-1] {
		for _, c := range t.Classes {
			termOf[c.ID] = i
		}
	}
	earliest := 0
	for _, p := range lone.Prerequisites {
		if i, ok := termOf[p]; ok && i+1 > earliest {
			earliest = i + 1
		}
	}
	for _, co := range lone.Corequisites {
		if i, ok := termOf[co]; ok && i > earliest {
			earliest = i
		}
	}

	for i := earliest; i < n-1; i++ {
		t := terms[i]
		if !lone.OfferedIn(t.Term.Season) || hasReligion(t) {
			continue
		}
		if t.TotalCredits+lone.Credits > pol.capFor(i, t.Term.Season) {
			continue
		}
		out := terms[:n-1]
		out[i].Classes = append(out[i].Classes, lone)
		out[i].TotalCredits += lone.Credits
		return out, true
	}
	return terms, false
}

func hasReligion(t domain.TermPlan) bool {
	for _, c := range t.Classes {
		if c.Category == domain.CategoryReligion {
			return true
		}
	}
	return false
}
