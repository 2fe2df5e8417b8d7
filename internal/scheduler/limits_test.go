package scheduler

import (
	"testing"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fall2025 = domain.Term{Season: domain.SeasonFall, Year: 2025}

func TestResolvePolicy_CreditsDefaults(t *testing.T) {
	pol, err := resolvePolicy(domain.Preferences{Start: fall2025})
	require.NoError(t, err)

	assert.Equal(t, 16, pol.capFor(0, domain.SeasonFall))
	assert.Equal(t, 10, pol.capFor(2, domain.SeasonSpring))
	assert.Equal(t, 3, pol.majorLimit)
	assert.Equal(t, 100, pol.maxTerms)
}

func TestResolvePolicy_FirstYearCaps(t *testing.T) {
	prefs := domain.DefaultPreferences(fall2025)
	prefs.Credits = domain.CreditLimits{FallWinter: 18, Spring: 12}
	prefs.LimitFirstYear = true
	prefs.FirstYear = &domain.CreditLimits{FallWinter: 12, Spring: 6}

	pol, err := resolvePolicy(prefs)
	require.NoError(t, err)

	assert.Equal(t, 12, pol.capFor(0, domain.SeasonFall))
	assert.Equal(t, 12, pol.capFor(1, domain.SeasonWinter))
	assert.Equal(t, 6, pol.capFor(2, domain.SeasonSpring))
	assert.Equal(t, 18, pol.capFor(3, domain.SeasonFall), "the fourth term is past the first year")
	assert.Equal(t, 12, pol.capFor(5, domain.SeasonSpring))
}

func TestResolvePolicy_FirstYearIgnoredWhenNotLimited(t *testing.T) {
	prefs := domain.DefaultPreferences(fall2025)
	prefs.FirstYear = &domain.CreditLimits{FallWinter: 6, Spring: 3}

	pol, err := resolvePolicy(prefs)
	require.NoError(t, err)
	assert.Equal(t, 16, pol.capFor(0, domain.SeasonFall))
}

func TestResolvePolicy_SemesterBased(t *testing.T) {
	prefs := domain.DefaultPreferences(fall2025)
	prefs.Approach = domain.ApproachSemester
	prefs.Credits = domain.CreditLimits{FallWinter: 9, Spring: 3}
	prefs.MajorClassLimit = 1

	pol, err := resolvePolicy(prefs)
	require.NoError(t, err)
	assert.Equal(t, 18, pol.capFor(0, domain.SeasonFall), "credit preferences are ignored")
	assert.Equal(t, 12, pol.capFor(0, domain.SeasonSpring))
	assert.Zero(t, pol.majorLimit, "no major limit")

	prefs.LimitFirstYear = true
	pol, err = resolvePolicy(prefs)
	require.NoError(t, err)
	assert.Equal(t, 15, pol.capFor(1, domain.SeasonWinter))
	assert.Equal(t, 10, pol.capFor(2, domain.SeasonSpring))
	assert.Equal(t, 18, pol.capFor(3, domain.SeasonFall))
}

func TestResolvePolicy_Invalid(t *testing.T) {
	cases := map[string]domain.Preferences{
		"zero start":       {},
		"unknown approach": {Start: fall2025, Approach: "vibes"},
		"negative ceiling": {Start: fall2025, MaxTerms: -1},
	}
	for name, prefs := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := resolvePolicy(prefs)
			assert.ErrorIs(t, err, ErrInvalidPreferences)
		})
	}
}
