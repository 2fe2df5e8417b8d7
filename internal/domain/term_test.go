package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTerm_Valid(t *testing.T) {
	term, err := ParseTerm("Winter 2025")
	require.NoError(t, err)
	assert.Equal(t, Term{Season: SeasonWinter, Year: 2025}, term)

	term, err = ParseTerm("  fall   2030 ")
	require.NoError(t, err)
	assert.Equal(t, Term{Season: SeasonFall, Year: 2030}, term)
}

func TestParseTerm_Invalid(t *testing.T) {
	cases := []string{"", "Fall", "Summer 2025", "Fall twenty", "Fall 2025 extra", "Spring -1"}
	for _, s := range cases {
		_, err := ParseTerm(s)
		require.Error(t, err, "should reject %q", s)
		assert.ErrorIs(t, err, ErrInvalidTerm)
	}
}

func TestTermNext_YearIncrementsOnlyIntoWinter(t *testing.T) {
	start, err := ParseTerm("Winter 2025")
	require.NoError(t, err)

	second := start.Next()
	third := second.Next()
	fourth := third.Next()

	assert.Equal(t, "Spring 2025", second.String())
	assert.Equal(t, "Fall 2025", third.String())
	assert.Equal(t, "Winter 2026", fourth.String())
}

func TestTermNext_FullCycleFromFall(t *testing.T) {
	term := Term{Season: SeasonFall, Year: 2024}
	var got []string
	for i := 0; i < 6; i++ {
		got = append(got, term.String())
		term = term.Next()
	}
	assert.Equal(t, []string{
		"Fall 2024", "Winter 2025", "Spring 2025",
		"Fall 2025", "Winter 2026", "Spring 2026",
	}, got)
}

func TestParseCategory_Aliases(t *testing.T) {
	assert.Equal(t, CategoryMinor, ParseCategory("minor1"))
	assert.Equal(t, CategoryMinor, ParseCategory("Minor2"))
	assert.Equal(t, CategoryFiller, ParseCategory("core"))
	assert.Equal(t, CategoryFiller, ParseCategory("elective-filler"))
	assert.Equal(t, CategoryEIL, ParseCategory("EIL"))
	assert.Equal(t, CategoryOther, ParseCategory("Computer Science"))
}

func TestCategoryRank_Order(t *testing.T) {
	assert.Less(t, CategoryMajor.Rank(), CategoryMinor.Rank())
	assert.Less(t, CategoryMinor.Rank(), CategoryReligion.Rank())
	assert.Less(t, CategoryReligion.Rank(), CategoryOther.Rank())
	assert.Less(t, CategoryOther.Rank(), CategoryFiller.Rank())
}

func TestClassEarliestSeason(t *testing.T) {
	c := Class{Offered: []Season{SeasonSpring, SeasonWinter}}
	assert.Equal(t, 1, c.EarliestSeason())

	never := Class{}
	assert.Equal(t, len(Seasons), never.EarliestSeason())
}

func TestClassClone_DoesNotShareSlices(t *testing.T) {
	orig := Class{ID: 1, Prerequisites: []int64{2}, Offered: []Season{SeasonFall}}
	cp := orig.Clone()
	cp.Prerequisites = append(cp.Prerequisites[:0], 9)
	cp.Offered[0] = SeasonSpring

	assert.Equal(t, []int64{2}, orig.Prerequisites)
	assert.Equal(t, SeasonFall, orig.Offered[0])
}

func TestSectionUniformCredits(t *testing.T) {
	s := Section{Classes: []Class{{Credits: 3}, {Credits: 3}}}
	credit, ok := s.UniformCredits()
	assert.True(t, ok)
	assert.Equal(t, 3, credit)

	mixed := Section{Classes: []Class{{Credits: 3}, {Credits: 2}}}
	_, ok = mixed.UniformCredits()
	assert.False(t, ok)

	empty := Section{}
	_, ok = empty.UniformCredits()
	assert.False(t, ok)
}
