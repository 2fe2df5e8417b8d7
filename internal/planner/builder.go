package planner

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/repository"
	"golang.org/x/sync/errgroup"
)

// Catalog is the read-only catalog the builder fetches from.
type Catalog interface {
	GetCourse(ctx context.Context, id int64) (*domain.Course, error)
	GetClass(ctx context.Context, id int64) (*domain.Class, error)
}

// Selection is the user's program choice.
type Selection struct {
	MajorID      int64
	Minor1ID     int64
	Minor2ID     int64
	EnglishLevel domain.EnglishLevel
}

// BuildRequest carries everything the builder needs for one plan.
type BuildRequest struct {
	Selection Selection

	// Auxiliary courses, resolved by the caller from the catalog.
	ReligionCourseIDs []int64
	EILCourseIDs      []int64 // every EIL track course; filtered by level
	FillerCourseIDs   []int64

	// Electives maps an elective section id to the chosen class ids.
	Electives map[int64][]int64
}

// ClassSet is a deduplicated, dependency-closed collection of classes in
// inclusion order.
type ClassSet struct {
	Classes []domain.Class
	index   map[int64]int
}

func newClassSet() *ClassSet {
	return &ClassSet{index: make(map[int64]int)}
}

// Get returns the class with the given id.
func (s *ClassSet) Get(id int64) (*domain.Class, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.Classes[i], true
}

// Len returns the number of classes.
func (s *ClassSet) Len() int { return len(s.Classes) }

// add inserts a copy of c tagged with cat. First writer wins.
func (s *ClassSet) add(c domain.Class, cat domain.Category) bool {
	if _, exists := s.index[c.ID]; exists {
		return false
	}
	cp := c.Clone()
	cp.Category = cat
	s.index[cp.ID] = len(s.Classes)
	s.Classes = append(s.Classes, cp)
	return true
}

// Builder flattens selected courses into a schedulable class set.
type Builder struct {
	catalog Catalog
}

// NewBuilder creates a Builder over the given catalog.
func NewBuilder(catalog Catalog) *Builder {
	return &Builder{catalog: catalog}
}

type seed struct {
	course   *domain.Course
	category domain.Category
}

// Build resolves the request into a ClassSet. Any unresolvable reference
// aborts the build.
func (b *Builder) Build(ctx context.Context, req BuildRequest) (*ClassSet, error) {
	if err := ValidateSelectionIDs(req.Selection); err != nil {
		return nil, err
	}

	ids := []int64{req.Selection.MajorID, req.Selection.Minor1ID, req.Selection.Minor2ID}
	ids = append(ids, req.ReligionCourseIDs...)
	ids = append(ids, req.EILCourseIDs...)
	ids = append(ids, req.FillerCourseIDs...)

	courses, err := b.fetchCourses(ctx, ids)
	if err != nil {
		return nil, err
	}

	major, minor1, minor2 := courses[0], courses[1], courses[2]
	if err := ValidateSelection(major, minor1, minor2); err != nil {
		return nil, err
	}

	rest := courses[3:]
	religion := rest[:len(req.ReligionCourseIDs)]
	eil := rest[len(req.ReligionCourseIDs) : len(req.ReligionCourseIDs)+len(req.EILCourseIDs)]
	filler := rest[len(req.ReligionCourseIDs)+len(req.EILCourseIDs):]

	seeds := []seed{
		{major, domain.CategoryMajor},
		{minor1, domain.CategoryMinor},
		{minor2, domain.CategoryMinor},
	}
	for _, c := range religion {
		seeds = append(seeds, seed{c, domain.CategoryReligion})
	}
	level1, level2 := splitEILTracks(eil)
	switch req.Selection.EnglishLevel {
	case domain.EnglishLevel1:
		for _, c := range append(slices.Clone(level1), level2...) {
			seeds = append(seeds, seed{c, domain.CategoryEIL})
		}
	case domain.EnglishLevel2:
		for _, c := range level2 {
			seeds = append(seeds, seed{c, domain.CategoryEIL})
		}
	}
	for _, c := range filler {
		seeds = append(seeds, seed{c, domain.CategoryFiller})
	}

	set := newClassSet()
	local := indexCourseClasses(courses)
	for _, s := range seeds {
		if err := b.addCourse(ctx, set, local, s, req.Electives); err != nil {
			return nil, err
		}
	}

	if req.Selection.EnglishLevel == domain.EnglishLevel1 {
		chainEILLevels(set, level1, level2)
	}

	if errs := ValidateEdges(set.Classes); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return set, nil
}

// fetchCourses loads every course concurrently and returns them in the order
// of ids.
func (b *Builder) fetchCourses(ctx context.Context, ids []int64) ([]*domain.Course, error) {
	out := make([]*domain.Course, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			course, err := b.catalog.GetCourse(gctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("%w: course %d", ErrMissingReference, id)
				}
				return fmt.Errorf("fetching course %d: %w", id, err)
			}
			out[i] = course
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// addCourse adds a course's required classes and chosen electives, then
// pulls in their dependency closure under the same category.
func (b *Builder) addCourse(ctx context.Context, set *ClassSet, local map[int64]domain.Class, s seed, electives map[int64][]int64) error {
	var queue []int64
	push := func(c domain.Class) {
		if set.add(c, s.category) {
			queue = append(queue, c.ID)
		}
	}

	for _, section := range s.course.Sections {
		if section.Required {
			for _, c := range section.Classes {
				push(c)
			}
			continue
		}
		chosen := electives[section.ID]
		for _, id := range chosen {
			if !section.HasClass(id) {
				return fmt.Errorf("%w: class %d in section %d (%s)", ErrUnknownElective, id, section.ID, section.Name)
			}
		}
		// Walk the section's own order so the result does not depend on the
		// order choices were made in.
		for _, c := range section.Classes {
			if slices.Contains(chosen, c.ID) {
				push(c)
			}
		}
	}

	for i := 0; i < len(queue); i++ {
		c, _ := set.Get(queue[i])
		deps := append(slices.Clone(c.Prerequisites), c.Corequisites...)
		for _, id := range deps {
			if _, ok := set.Get(id); ok {
				continue
			}
			dep, err := b.resolveClass(ctx, local, id)
			if err != nil {
				return fmt.Errorf("resolving dependency of %s: %w", c.Number, err)
			}
			push(dep)
		}
	}
	return nil
}

func (b *Builder) resolveClass(ctx context.Context, local map[int64]domain.Class, id int64) (domain.Class, error) {
	if c, ok := local[id]; ok {
		return c, nil
	}
	c, err := b.catalog.GetClass(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Class{}, fmt.Errorf("%w: class %d", ErrMissingReference, id)
		}
		return domain.Class{}, fmt.Errorf("fetching class %d: %w", id, err)
	}
	return *c, nil
}

func indexCourseClasses(courses []*domain.Course) map[int64]domain.Class {
	out := make(map[int64]domain.Class)
	for _, course := range courses {
		for _, s := range course.Sections {
			for _, c := range s.Classes {
				if _, ok := out[c.ID]; !ok {
					out[c.ID] = c
				}
			}
		}
	}
	return out
}

func splitEILTracks(courses []*domain.Course) (level1, level2 []*domain.Course) {
	for _, c := range courses {
		switch c.EILLevel {
		case 1:
			level1 = append(level1, c)
		case 2:
			level2 = append(level2, c)
		}
	}
	return level1, level2
}

// chainEILLevels makes every level-2 English class depend on every level-1
// English class present in the set.
func chainEILLevels(set *ClassSet, level1, level2 []*domain.Course) {
	var firstLevel []int64
	for _, course := range level1 {
		for _, s := range course.Sections {
			for _, c := range s.Classes {
				if _, ok := set.Get(c.ID); ok && !slices.Contains(firstLevel, c.ID) {
					firstLevel = append(firstLevel, c.ID)
				}
			}
		}
	}
	for _, course := range level2 {
		for _, s := range course.Sections {
			for _, c := range s.Classes {
				cls, ok := set.Get(c.ID)
				if !ok || cls.Category != domain.CategoryEIL {
					continue
				}
				for _, p := range firstLevel {
					if p != cls.ID && !slices.Contains(cls.Prerequisites, p) {
						cls.Prerequisites = append(cls.Prerequisites, p)
					}
				}
			}
		}
	}
}
