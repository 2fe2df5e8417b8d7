// Package elective walks a student through the elective sections of their
// selected courses, one section at a time.
package elective

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/planner"
)

// Wizard is the elective selection state machine. Each elective section is a
// state; the index equal to the section count is the terminal state.
//
// Wizard is not safe for concurrent use.
type Wizard struct {
	sections []domain.Section
	known    map[int64]domain.Class
	chosen   map[int64]planner.IDSet // section id -> toggled class ids
	index    int
}

// NewWizard builds a wizard over the elective sections of courses, in course
// order and then section display order. extra holds catalog classes outside
// those sections that corequisites may point at.
func NewWizard(courses []*domain.Course, extra ...domain.Class) *Wizard {
	w := &Wizard{}
	w.Reset(courses, extra...)
	return w
}

// Reset discards every selection and restarts at the first section of the new
// course list.
func (w *Wizard) Reset(courses []*domain.Course, extra ...domain.Class) {
	w.sections = nil
	w.known = make(map[int64]domain.Class)
	w.chosen = make(map[int64]planner.IDSet)
	w.index = 0

	for _, course := range courses {
		if course == nil {
			continue
		}
		for _, s := range course.Sections {
			for _, c := range s.Classes {
				if _, ok := w.known[c.ID]; !ok {
					w.known[c.ID] = c
				}
			}
		}
		electives := course.ElectiveSections()
		slices.SortStableFunc(electives, func(a, b domain.Section) int {
			return a.DisplayOrder - b.DisplayOrder
		})
		w.sections = append(w.sections, electives...)
	}
	for _, c := range extra {
		if _, ok := w.known[c.ID]; !ok {
			w.known[c.ID] = c
		}
	}
}

// Sections returns the elective sections in wizard order.
func (w *Wizard) Sections() []domain.Section { return w.sections }

// Index returns the current section index; Len() when done.
func (w *Wizard) Index() int { return w.index }

// Len returns the number of sections.
func (w *Wizard) Len() int { return len(w.sections) }

// Done reports whether the wizard reached its terminal state.
func (w *Wizard) Done() bool { return w.index >= len(w.sections) }

// Current returns the section being edited.
func (w *Wizard) Current() (domain.Section, bool) {
	if w.Done() {
		return domain.Section{}, false
	}
	return w.sections[w.index], true
}

// Toggle adds or removes a class from the current section's selection.
func (w *Wizard) Toggle(classID int64) error {
	section, ok := w.Current()
	if !ok {
		return ErrComplete
	}
	if !section.HasClass(classID) {
		return fmt.Errorf("%w: class %d in %s", ErrNotInSection, classID, section.Name)
	}
	set := w.chosen[section.ID]
	if set == nil {
		set = make(planner.IDSet)
		w.chosen[section.ID] = set
	}
	if set.Has(classID) {
		delete(set, classID)
	} else {
		set.Add(classID)
	}
	return nil
}

// IsSelected reports whether classID is toggled on in the current section.
func (w *Wizard) IsSelected(classID int64) bool {
	section, ok := w.Current()
	if !ok {
		return false
	}
	return w.chosen[section.ID].Has(classID)
}

// Check evaluates the current section's policy without moving.
func (w *Wizard) Check() error {
	section, ok := w.Current()
	if !ok {
		return ErrComplete
	}
	return CheckPolicy(section, w.CreditsSelected(section.ID), len(w.chosen[section.ID]))
}

// Advance moves to the next section when the current one satisfies its
// policy. Advancing from the last section enters the terminal state.
func (w *Wizard) Advance() error {
	if err := w.Check(); err != nil {
		return err
	}
	w.index++
	return nil
}

// Back returns to the previous section, keeping every selection.
func (w *Wizard) Back() {
	if w.index > 0 {
		w.index--
	}
}

// CreditsSelected sums the credits of the section's chosen classes and their
// corequisites, counting each class once.
func (w *Wizard) CreditsSelected(sectionID int64) int {
	total := 0
	for _, id := range w.expanded(sectionID) {
		total += w.known[id].Credits
	}
	return total
}

// Selections returns the class ids the user toggled per elective section,
// in section order. Corequisites are not listed: the class builder pulls them
// in, wherever they live in the catalog.
func (w *Wizard) Selections() map[int64][]int64 {
	out := make(map[int64][]int64, len(w.chosen))
	for _, s := range w.sections {
		set := w.chosen[s.ID]
		if len(set) == 0 {
			continue
		}
		var ids []int64
		for _, c := range s.Classes {
			if set.Has(c.ID) {
				ids = append(ids, c.ID)
			}
		}
		if len(ids) > 0 {
			out[s.ID] = ids
		}
	}
	return out
}

func (w *Wizard) expanded(sectionID int64) []int64 {
	set := w.chosen[sectionID]
	if len(set) == 0 {
		return nil
	}
	var section *domain.Section
	for i := range w.sections {
		if w.sections[i].ID == sectionID {
			section = &w.sections[i]
			break
		}
	}
	if section == nil {
		return nil
	}

	lookup := func(id int64) (*domain.Class, bool) {
		c, ok := w.known[id]
		return &c, ok
	}
	seen := make(planner.IDSet)
	var out []int64
	for _, c := range section.Classes {
		if !set.Has(c.ID) {
			continue
		}
		for _, id := range planner.CorequisiteClosure(c.ID, lookup) {
			if !seen.Has(id) {
				seen.Add(id)
				out = append(out, id)
			}
		}
	}
	return out
}
