package importer

import (
	"testing"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_SampleCatalog(t *testing.T) {
	schema, err := LoadCatalogSchema("testdata/catalog.yaml")
	require.NoError(t, err)

	cat, err := Convert(schema)
	require.NoError(t, err)

	assert.Len(t, cat.Classes, 15)
	require.Len(t, cat.Courses, 7)

	history := cat.Courses[2]
	assert.Equal(t, domain.CourseMinor, history.Type)
	assert.Equal(t, "Arts", history.Holokai)
	require.Len(t, history.Sections, 2)
	assert.Equal(t, "Survey", history.Sections[0].Name, "sections follow display order")
	assert.True(t, history.Sections[0].Required)
	assert.False(t, history.Sections[1].Required)
	assert.Equal(t, 3, history.Sections[1].CreditsNeeded)
	assert.Equal(t, int64(3), history.Sections[1].CourseID)

	eil := cat.Courses[5]
	assert.Equal(t, 2, eil.EILLevel)
}

func TestConvert_ClassFields(t *testing.T) {
	schema := validMinimalSchema()
	schema.Classes[1].SemestersOffered = []string{"winter", "Winter", "SPRING"}
	schema.Classes[1].DaysOffered = []string{"M", "W"}
	schema.Classes[1].SeniorClass = true

	cat, err := Convert(schema)
	require.NoError(t, err)

	c := cat.Classes[1]
	assert.Equal(t, []domain.Season{domain.SeasonWinter, domain.SeasonSpring}, c.Offered)
	assert.Equal(t, []int64{1}, c.Prerequisites)
	assert.Equal(t, []string{"M", "W"}, c.DaysOffered)
	assert.True(t, c.SeniorStanding)
	assert.Empty(t, c.Category, "category is assigned when a plan is built")
}

func TestConvert_DefaultDisplayOrder(t *testing.T) {
	cat, err := Convert(validMinimalSchema())
	require.NoError(t, err)

	sections := cat.Courses[0].Sections
	assert.Equal(t, 1, sections[0].DisplayOrder)
	assert.Equal(t, 2, sections[1].DisplayOrder)
	require.Len(t, sections[0].Classes, 1)
	assert.Equal(t, "CS 101", sections[0].Classes[0].Number)
}

func TestParseCatalogSchema_JSONMatchesFile(t *testing.T) {
	schema, err := LoadCatalogSchema("testdata/catalog.json")
	require.NoError(t, err)
	assert.Len(t, schema.Classes, 4)
	assert.Len(t, schema.Courses, 3)
	assert.True(t, schema.Courses[0].Sections[0].IsRequired())
}

func TestParseCatalogSchema_UnknownFormat(t *testing.T) {
	_, err := ParseCatalogSchema([]byte("{}"), Format("toml"))
	assert.Error(t, err)
}

func TestParseCatalogSchema_Malformed(t *testing.T) {
	_, err := ParseCatalogSchema([]byte("classes: [unterminated"), FormatYAML)
	assert.Error(t, err)

	_, err = ParseCatalogSchema([]byte(`{"classes": 5}`), FormatJSON)
	assert.Error(t, err)
}
