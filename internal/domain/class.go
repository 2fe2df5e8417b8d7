package domain

import "slices"

// Class is one schedulable unit from the catalog.
type Class struct {
	ID             int64
	Number         string // e.g. "MATH 110"
	Name           string
	Credits        int
	Offered        []Season
	Prerequisites  []int64
	Corequisites   []int64
	Category       Category
	SeniorStanding bool
	Restrictions   string
	Description    string

	// Pass-through scheduling hints, unused by the scheduler.
	DaysOffered  []string
	TimesOffered []string
}

// OfferedIn reports whether the class runs in the given season.
func (c *Class) OfferedIn(s Season) bool {
	return slices.Contains(c.Offered, s)
}

// EarliestSeason returns the index of the earliest offered season in the
// Fall/Winter/Spring order, or len(Seasons) when the class is never offered.
func (c *Class) EarliestSeason() int {
	earliest := len(Seasons)
	for _, s := range c.Offered {
		if i := s.Index(); i >= 0 && i < earliest {
			earliest = i
		}
	}
	return earliest
}

// Label renders "NUMBER: Name" for display.
func (c *Class) Label() string {
	if c.Name == "" {
		return c.Number
	}
	return c.Number + ": " + c.Name
}

// Clone returns a deep copy so callers can retag or extend edges without
// touching shared catalog records.
func (c Class) Clone() Class {
	c.Offered = slices.Clone(c.Offered)
	c.Prerequisites = slices.Clone(c.Prerequisites)
	c.Corequisites = slices.Clone(c.Corequisites)
	c.DaysOffered = slices.Clone(c.DaysOffered)
	c.TimesOffered = slices.Clone(c.TimesOffered)
	return c
}
