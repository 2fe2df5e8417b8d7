package scheduler

import (
	"testing"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	terms := []domain.TermPlan{
		{Term: fall2025, Classes: []domain.Class{
			testutil.NewTestClass(1, "A"),
			testutil.NewTestClass(2, "B", testutil.WithCategory(domain.CategoryReligion), testutil.WithCredits(2)),
		}},
		{Term: fall2025.Next(), Classes: []domain.Class{
			testutil.NewTestClass(3, "C", testutil.WithCategory(domain.CategoryMinor), testutil.WithCredits(4)),
		}},
	}

	s := Summarize(terms)

	assert.Equal(t, 9, s.TotalCredits)
	assert.Equal(t, 2, s.TermCount)
	assert.Equal(t, "Winter 2026", s.Graduation)
	assert.Equal(t, 115, s.Shortfall)
	assert.Equal(t, map[domain.Category]int{
		domain.CategoryMajor:    3,
		domain.CategoryReligion: 2,
		domain.CategoryMinor:    4,
	}, s.CreditsByCategory)
}

func TestSummarize_ShortfallNeverNegative(t *testing.T) {
	var classes []domain.Class
	for id := int64(1); id <= 42; id++ {
		classes = append(classes, testutil.NewTestClass(id, "X"))
	}
	s := Summarize([]domain.TermPlan{{Term: fall2025, Classes: classes}})

	assert.Equal(t, 126, s.TotalCredits)
	assert.Zero(t, s.Shortfall)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TermCount)
	assert.Empty(t, s.Graduation)
	assert.Equal(t, DegreeCreditTarget, s.Shortfall)
}
