package planner

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// IDSet is a set of class ids.
type IDSet map[int64]struct{}

// Has reports whether id is in the set.
func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id.
func (s IDSet) Add(id int64) {
	s[id] = struct{}{}
}

// IsReady reports whether every prerequisite of c is in completed.
// Corequisites are deliberately not consulted: they may be taken in the same
// term, which the scheduler handles.
func IsReady(c *domain.Class, completed IDSet) bool {
	for _, p := range c.Prerequisites {
		if !completed.Has(p) {
			return false
		}
	}
	return true
}

// Lookup resolves a class id within a flattened set.
type Lookup func(id int64) (*domain.Class, bool)

// CorequisiteClosure returns id followed by its transitive corequisites in
// breadth-first order. Ids the lookup cannot resolve are skipped.
func CorequisiteClosure(id int64, lookup Lookup) []int64 {
	seen := IDSet{id: {}}
	out := []int64{id}
	for i := 0; i < len(out); i++ {
		c, ok := lookup(out[i])
		if !ok {
			continue
		}
		for _, co := range c.Corequisites {
			if seen.Has(co) {
				continue
			}
			if _, ok := lookup(co); !ok {
				continue
			}
			seen.Add(co)
			out = append(out, co)
		}
	}
	return out
}

// DependentCounts counts, for every class id, how many classes in the set list
// it as a prerequisite.
func DependentCounts(classes []domain.Class) map[int64]int {
	counts := make(map[int64]int, len(classes))
	for _, c := range classes {
		for _, p := range c.Prerequisites {
			counts[p]++
		}
	}
	return counts
}

// ValidateEdges checks that every prerequisite and corequisite resolves to a
// class in the same set and that ids are unique. All problems are returned.
func ValidateEdges(classes []domain.Class) []error {
	var errs []error
	ids := make(IDSet, len(classes))
	for _, c := range classes {
		if ids.Has(c.ID) {
			errs = append(errs, fmt.Errorf("%w: duplicate class id %d", ErrDanglingEdge, c.ID))
			continue
		}
		ids.Add(c.ID)
	}
	for _, c := range classes {
		for _, p := range c.Prerequisites {
			if !ids.Has(p) {
				errs = append(errs, fmt.Errorf("%w: class %d (%s) prerequisite %d not in set", ErrDanglingEdge, c.ID, c.Number, p))
			}
		}
		for _, co := range c.Corequisites {
			if !ids.Has(co) {
				errs = append(errs, fmt.Errorf("%w: class %d (%s) corequisite %d not in set", ErrDanglingEdge, c.ID, c.Number, co))
			}
		}
	}
	return errs
}

// FindCycle runs Kahn's algorithm over prerequisite edges and returns the ids
// that could never become ready (sorted). An empty result means the
// prerequisite graph is acyclic. Edges to ids outside the set are ignored.
func FindCycle(classes []domain.Class) []int64 {
	inDeg := make(map[int64]int, len(classes))
	dependents := make(map[int64][]int64, len(classes))
	for _, c := range classes {
		inDeg[c.ID] += 0
	}
	for _, c := range classes {
		for _, p := range c.Prerequisites {
			if _, ok := inDeg[p]; !ok {
				continue
			}
			inDeg[c.ID]++
			dependents[p] = append(dependents[p], c.ID)
		}
	}

	var queue []int64
	for id, deg := range inDeg {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	processed := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		processed++
		for _, dep := range dependents[id] {
			inDeg[dep]--
			if inDeg[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if processed == len(inDeg) {
		return nil
	}

	var stuck []int64
	for id, deg := range inDeg {
		if deg > 0 {
			stuck = append(stuck, id)
		}
	}
	slices.Sort(stuck)
	return stuck
}
