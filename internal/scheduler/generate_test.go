package scheduler

import (
	"errors"
	"testing"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/planner"
	"github.com/alexanderramin/degreeplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefsWithCaps(fallWinter, spring int) domain.Preferences {
	p := domain.DefaultPreferences(fall2025)
	p.Credits = domain.CreditLimits{FallWinter: fallWinter, Spring: spring}
	return p
}

func termIDs(tp domain.TermPlan) []int64 {
	out := make([]int64, len(tp.Classes))
	for i, c := range tp.Classes {
		out[i] = c.ID
	}
	return out
}

func TestGenerate_BudgetForcesSplit(t *testing.T) {
	classes := []domain.Class{
		testutil.NewTestClass(1, "A", testutil.WithOffered(domain.SeasonFall)),
		testutil.NewTestClass(2, "B", testutil.WithPrereqs(1), testutil.WithOffered(domain.SeasonFall, domain.SeasonWinter)),
	}

	res, err := Generate(classes, prefsWithCaps(3, 3))
	require.NoError(t, err)

	require.Len(t, res.Terms, 2)
	assert.Equal(t, "Fall 2025", res.Terms[0].Term.String())
	assert.Equal(t, []int64{1}, termIDs(res.Terms[0]))
	assert.Equal(t, "Winter 2026", res.Terms[1].Term.String())
	assert.Equal(t, []int64{2}, termIDs(res.Terms[1]))
}

func TestGenerate_OneReligionAndMajorLimit(t *testing.T) {
	classes := []domain.Class{
		testutil.NewTestClass(100, "REL 121", testutil.WithCategory(domain.CategoryReligion)),
		testutil.NewTestClass(101, "REL 122", testutil.WithCategory(domain.CategoryReligion)),
	}
	for id := int64(1); id <= 5; id++ {
		classes = append(classes, testutil.NewTestClass(id, "MAJ"))
	}
	prefs := prefsWithCaps(15, 15)
	prefs.MajorClassLimit = 2

	res, err := Generate(classes, prefs)
	require.NoError(t, err)

	first := res.Terms[0]
	religions, majors := 0, 0
	for _, c := range first.Classes {
		switch c.Category {
		case domain.CategoryReligion:
			religions++
		case domain.CategoryMajor:
			majors++
		}
	}
	assert.Equal(t, 1, religions)
	assert.Equal(t, 2, majors)

	for _, term := range res.Terms {
		assertMajorsAtMost(t, term, 2)
	}
}

func assertMajorsAtMost(t *testing.T, term domain.TermPlan, limit int) {
	t.Helper()
	n := 0
	for _, c := range term.Classes {
		if c.Category == domain.CategoryMajor {
			n++
		}
	}
	assert.LessOrEqual(t, n, limit, "term %s", term.Term)
}

func TestGenerate_CycleStalls(t *testing.T) {
	classes := []domain.Class{
		testutil.NewTestClass(1, "X", testutil.WithPrereqs(3)),
		testutil.NewTestClass(2, "Y", testutil.WithPrereqs(1)),
		testutil.NewTestClass(3, "Z", testutil.WithPrereqs(2)),
		testutil.NewTestClass(4, "free"),
	}

	res, err := Generate(classes, prefsWithCaps(16, 10))
	require.Error(t, err)
	assert.Nil(t, res, "partial schedules are discarded")
	assert.ErrorIs(t, err, ErrStalled)
	assert.NotErrorIs(t, err, ErrIterationCeiling)

	var stall *StallError
	require.True(t, errors.As(err, &stall))
	assert.Equal(t, []int64{1, 2, 3}, stall.Remaining)
	assert.Equal(t, "Winter 2026", stall.Term.String())
}

func TestGenerate_SelfPrerequisiteStalls(t *testing.T) {
	classes := []domain.Class{testutil.NewTestClass(1, "X", testutil.WithPrereqs(1))}

	_, err := Generate(classes, prefsWithCaps(16, 10))
	assert.ErrorIs(t, err, ErrStalled)
}

func TestGenerate_SeasonGapStalls(t *testing.T) {
	classes := []domain.Class{testutil.NewTestClass(1, "S", testutil.WithOffered(domain.SeasonSpring))}

	_, err := Generate(classes, prefsWithCaps(16, 10))
	assert.ErrorIs(t, err, ErrStalled, "an empty term ends the run")
}

func TestGenerate_IterationCeiling(t *testing.T) {
	classes := []domain.Class{
		testutil.NewTestClass(1, "A"),
		testutil.NewTestClass(2, "B", testutil.WithPrereqs(1)),
		testutil.NewTestClass(3, "C", testutil.WithPrereqs(2)),
	}
	prefs := prefsWithCaps(16, 10)
	prefs.MaxTerms = 2

	_, err := Generate(classes, prefs)
	assert.ErrorIs(t, err, ErrIterationCeiling)
	assert.NotErrorIs(t, err, ErrStalled)
}

func TestGenerate_CorequisitesPlacedTogether(t *testing.T) {
	classes := []domain.Class{
		testutil.NewTestClass(1, "CHEM 105", testutil.WithCoreqs(2)),
		testutil.NewTestClass(2, "CHEM 105L", testutil.WithCredits(1), testutil.WithCoreqs(1)),
		testutil.NewTestClass(3, "MATH 110"),
	}

	res, err := Generate(classes, prefsWithCaps(4, 4))
	require.NoError(t, err)

	require.Len(t, res.Terms, 2)
	assert.ElementsMatch(t, []int64{1, 2}, termIDs(res.Terms[0]))
	assert.Equal(t, []int64{3}, termIDs(res.Terms[1]))
}

func TestGenerate_OversizedBundleDeferredWhole(t *testing.T) {
	classes := []domain.Class{
		testutil.NewTestClass(1, "CHEM 105", testutil.WithCoreqs(2)),
		testutil.NewTestClass(2, "CHEM 105L", testutil.WithCredits(1)),
	}

	res, err := Generate(classes, prefsWithCaps(3, 3))
	require.NoError(t, err)

	// The lecture cannot fit with its lab, so the lab goes first on its own
	// and the lecture follows once the lab is completed.
	require.Len(t, res.Terms, 2)
	assert.Equal(t, []int64{2}, termIDs(res.Terms[0]))
	assert.Equal(t, []int64{1}, termIDs(res.Terms[1]))
}

func TestGenerate_BundleWithInternalPrerequisiteNeverEligible(t *testing.T) {
	classes := []domain.Class{
		testutil.NewTestClass(1, "A", testutil.WithCoreqs(2)),
		testutil.NewTestClass(2, "B", testutil.WithPrereqs(1), testutil.WithCoreqs(1)),
	}

	_, err := Generate(classes, prefsWithCaps(16, 10))
	assert.ErrorIs(t, err, ErrStalled)
}

func TestGenerate_CompletedCorequisiteNotRequiredAgain(t *testing.T) {
	classes := []domain.Class{
		testutil.NewTestClass(1, "Q"),
		testutil.NewTestClass(2, "C", testutil.WithPrereqs(3), testutil.WithCoreqs(1)),
		testutil.NewTestClass(3, "X"),
	}

	res, err := Generate(classes, prefsWithCaps(6, 6))
	require.NoError(t, err)

	termOf := termIndex(res.Terms)
	assert.LessOrEqual(t, termOf[1], termOf[2])
	assert.Less(t, termOf[3], termOf[2])
}

func TestGenerate_EILWindow(t *testing.T) {
	eil := testutil.WithCategory(domain.CategoryEIL)
	classes := []domain.Class{
		testutil.NewTestClass(1, "EIL 101", eil),
		testutil.NewTestClass(2, "EIL 102", eil),
		testutil.NewTestClass(3, "MAJ 1"),
	}

	res, err := Generate(classes, prefsWithCaps(6, 6))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int64{1, 2}, termIDs(res.Terms[0]), "EIL is placed before the general pass")
	assert.Equal(t, []int64{3}, termIDs(res.Terms[1]))
}

func TestGenerate_EILAfterWindowJoinsGeneralPass(t *testing.T) {
	eil := testutil.WithCategory(domain.CategoryEIL)
	classes := []domain.Class{
		testutil.NewTestClass(1, "E1", eil),
		testutil.NewTestClass(2, "E2", eil, testutil.WithPrereqs(1)),
		testutil.NewTestClass(3, "E3", eil, testutil.WithPrereqs(2)),
		testutil.NewTestClass(4, "E4", eil, testutil.WithPrereqs(3)),
		testutil.NewTestClass(5, "E5", eil, testutil.WithPrereqs(4)),
	}

	res, err := Generate(classes, prefsWithCaps(16, 10))
	require.NoError(t, err)
	require.Len(t, res.Terms, 5)
	assert.Equal(t, []int64{5}, termIDs(res.Terms[4]))
}

func TestGenerate_FillerRanksLastOnTies(t *testing.T) {
	classes := []domain.Class{
		testutil.NewTestClass(1, "GE 1", testutil.WithCategory(domain.CategoryFiller)),
		testutil.NewTestClass(2, "MAJ 1"),
		testutil.NewTestClass(3, "MIN 1", testutil.WithCategory(domain.CategoryMinor)),
	}

	res, err := Generate(classes, prefsWithCaps(6, 6))
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3}, termIDs(res.Terms[0]))
	assert.Equal(t, []int64{1}, termIDs(res.Terms[1]))
}

func TestGenerate_FillerCompetesOnFanOut(t *testing.T) {
	filler := testutil.WithCategory(domain.CategoryFiller)
	classes := []domain.Class{
		testutil.NewTestClass(1, "CS 101"),
		testutil.NewTestClass(2, "CS 201", testutil.WithPrereqs(9)),
		testutil.NewTestClass(3, "CS 202", testutil.WithPrereqs(9)),
		testutil.NewTestClass(9, "GE 100", filler),
	}

	res, err := Generate(classes, prefsWithCaps(3, 3))
	require.NoError(t, err)

	require.Len(t, res.Terms, 4)
	assert.Equal(t, []int64{9}, termIDs(res.Terms[0]), "the class unlocking the most dependents goes first")
	assert.Equal(t, []int64{1}, termIDs(res.Terms[1]))
}

func TestGenerate_FirstYearCapsApply(t *testing.T) {
	var classes []domain.Class
	for id := int64(1); id <= 6; id++ {
		classes = append(classes, testutil.NewTestClass(id, "C", testutil.WithCategory(domain.CategoryMinor)))
	}
	prefs := prefsWithCaps(12, 12)
	prefs.LimitFirstYear = true
	prefs.FirstYear = &domain.CreditLimits{FallWinter: 6, Spring: 3}

	res, err := Generate(classes, prefs)
	require.NoError(t, err)

	require.Len(t, res.Terms, 4)
	assert.Equal(t, 6, res.Terms[0].TotalCredits)
	assert.Equal(t, 6, res.Terms[1].TotalCredits)
	assert.Equal(t, 3, res.Terms[2].TotalCredits, "first-year spring cap")
	assert.Equal(t, 3, res.Terms[3].TotalCredits)
}

func TestGenerate_SemesterBasedIgnoresMajorLimit(t *testing.T) {
	var classes []domain.Class
	for id := int64(1); id <= 6; id++ {
		classes = append(classes, testutil.NewTestClass(id, "MAJ"))
	}
	prefs := prefsWithCaps(3, 3)
	prefs.MajorClassLimit = 1
	prefs.Approach = domain.ApproachSemester

	res, err := Generate(classes, prefs)
	require.NoError(t, err)
	require.Len(t, res.Terms, 1)
	assert.Equal(t, 18, res.Terms[0].TotalCredits)
}

func TestGenerate_RejectsInvalidInput(t *testing.T) {
	_, err := Generate([]domain.Class{testutil.NewTestClass(1, "A", testutil.WithPrereqs(9))}, prefsWithCaps(16, 10))
	assert.ErrorIs(t, err, planner.ErrDanglingEdge)

	_, err = Generate([]domain.Class{testutil.NewTestClass(1, "A", testutil.WithCredits(0))}, prefsWithCaps(16, 10))
	assert.ErrorIs(t, err, ErrInvalidClass)

	_, err = Generate(nil, domain.Preferences{})
	assert.ErrorIs(t, err, ErrInvalidPreferences)
}

func TestGenerate_EmptyInput(t *testing.T) {
	res, err := Generate(nil, prefsWithCaps(16, 10))
	require.NoError(t, err)
	assert.Empty(t, res.Terms)
	assert.Equal(t, DegreeCreditTarget, res.Summary.Shortfall)
}

func TestGenerate_DoesNotMutateInput(t *testing.T) {
	classes := []domain.Class{
		testutil.NewTestClass(1, "A", testutil.WithCoreqs(2)),
		testutil.NewTestClass(2, "B"),
	}
	_, err := Generate(classes, prefsWithCaps(16, 10))
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, classes[0].Corequisites)
	assert.Equal(t, int64(1), classes[0].ID)
}

func TestGenerate_Deterministic(t *testing.T) {
	classes := []domain.Class{
		testutil.NewTestClass(5, "E"),
		testutil.NewTestClass(3, "C", testutil.WithPrereqs(5)),
		testutil.NewTestClass(1, "A", testutil.WithCategory(domain.CategoryMinor)),
		testutil.NewTestClass(4, "D", testutil.WithCategory(domain.CategoryReligion)),
		testutil.NewTestClass(2, "B", testutil.WithOffered(domain.SeasonWinter, domain.SeasonFall)),
	}

	first, err := Generate(classes, prefsWithCaps(6, 6))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Generate(classes, prefsWithCaps(6, 6))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func termIndex(terms []domain.TermPlan) map[int64]int {
	out := make(map[int64]int)
	for i, t := range terms {
		for _, c := range t.Classes {
			out[c.ID] = i
		}
	}
	return out
}
