package elective

import (
	"testing"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wizardCourses() []*domain.Course {
	major := testutil.NewTestCourse(1, "Computer Science", domain.CourseMajor,
		testutil.WithSections(
			testutil.RequiredSection(100, "Core", testutil.NewTestClass(1, "CS 101")),
			testutil.ElectiveSection(101, "Upper Electives", 3,
				testutil.NewTestClass(2, "CS 301"),
				testutil.NewTestClass(3, "CS 302"),
			),
		),
	)
	minor := testutil.NewTestCourse(2, "Biology", domain.CourseMinor,
		testutil.WithSections(
			testutil.ElectiveSection(201, "Lab Sciences", 4,
				testutil.NewTestClass(20, "BIOL 200", testutil.WithCredits(3), testutil.WithCoreqs(21)),
				testutil.NewTestClass(22, "BIOL 210", testutil.WithCredits(2)),
			),
		),
	)
	return []*domain.Course{major, minor}
}

// Lab lives outside every section and is only reachable as a corequisite.
var lab = testutil.NewTestClass(21, "BIOL 200L", testutil.WithCredits(1), testutil.WithCoreqs(20))

func TestWizard_SectionsInCourseOrder(t *testing.T) {
	w := NewWizard(wizardCourses(), lab)

	require.Equal(t, 2, w.Len())
	cur, ok := w.Current()
	require.True(t, ok)
	assert.Equal(t, int64(101), cur.ID)
	assert.Equal(t, int64(201), w.Sections()[1].ID)
}

func TestWizard_UniformSectionNeedsExactCount(t *testing.T) {
	w := NewWizard(wizardCourses(), lab)

	assert.ErrorIs(t, w.Advance(), ErrPolicyUnmet, "nothing selected")

	require.NoError(t, w.Toggle(2))
	require.NoError(t, w.Toggle(3))
	assert.ErrorIs(t, w.Advance(), ErrPolicyUnmet, "two selected")

	require.NoError(t, w.Toggle(3))
	require.NoError(t, w.Advance())
	assert.Equal(t, 1, w.Index())
}

func TestWizard_CorequisiteCreditsCount(t *testing.T) {
	w := NewWizard(wizardCourses(), lab)
	require.NoError(t, w.Toggle(2))
	require.NoError(t, w.Advance())

	require.NoError(t, w.Toggle(20))
	assert.Equal(t, 4, w.CreditsSelected(201), "lecture plus its lab")
	require.NoError(t, w.Advance())
	assert.True(t, w.Done())

	assert.Equal(t, map[int64][]int64{
		101: {2},
		201: {20},
	}, w.Selections(), "corequisites are left to the class builder")
}

func TestWizard_CreditsCountEachClassOnce(t *testing.T) {
	w := NewWizard(wizardCourses(), lab)
	require.NoError(t, w.Toggle(2))
	require.NoError(t, w.Advance())

	require.NoError(t, w.Toggle(20))
	require.NoError(t, w.Toggle(22))
	assert.Equal(t, 6, w.CreditsSelected(201))
	assert.ErrorIs(t, w.Advance(), ErrPolicyUnmet)
}

func TestWizard_BackKeepsSelections(t *testing.T) {
	w := NewWizard(wizardCourses(), lab)
	require.NoError(t, w.Toggle(3))
	require.NoError(t, w.Advance())

	w.Back()
	assert.Equal(t, 0, w.Index())
	assert.True(t, w.IsSelected(3))

	w.Back()
	assert.Equal(t, 0, w.Index(), "back at the first section is a no-op")
}

func TestWizard_ResetClearsEverything(t *testing.T) {
	w := NewWizard(wizardCourses(), lab)
	require.NoError(t, w.Toggle(3))
	require.NoError(t, w.Advance())

	other := testutil.NewTestCourse(3, "History", domain.CourseMinor,
		testutil.WithSections(testutil.ElectiveSection(301, "Periods", 3, testutil.NewTestClass(30, "HIST 201"))),
	)
	w.Reset([]*domain.Course{other})

	assert.Equal(t, 0, w.Index())
	assert.Equal(t, 1, w.Len())
	assert.Empty(t, w.Selections())
}

func TestWizard_ToggleErrors(t *testing.T) {
	w := NewWizard(wizardCourses(), lab)

	assert.ErrorIs(t, w.Toggle(20), ErrNotInSection, "class from a later section")
	assert.ErrorIs(t, w.Toggle(1), ErrNotInSection, "required class")

	require.NoError(t, w.Toggle(2))
	require.NoError(t, w.Advance())
	require.NoError(t, w.Toggle(20))
	require.NoError(t, w.Advance())
	assert.ErrorIs(t, w.Toggle(2), ErrComplete)
	assert.ErrorIs(t, w.Advance(), ErrComplete)
}

func TestWizard_NoElectiveSectionsStartsDone(t *testing.T) {
	course := testutil.NewTestCourse(4, "Required Only", domain.CourseMajor,
		testutil.WithSections(testutil.RequiredSection(400, "All", testutil.NewTestClass(40, "X 1"))),
	)
	w := NewWizard([]*domain.Course{course})
	assert.True(t, w.Done())
	_, ok := w.Current()
	assert.False(t, ok)
}
