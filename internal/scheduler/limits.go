package scheduler

import (
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// Fixed caps for semester-based generation.
var (
	semesterCaps          = domain.CreditLimits{FallWinter: 18, Spring: 12}
	semesterFirstYearCaps = domain.CreditLimits{FallWinter: 15, Spring: 10}
)

// firstYearTerms is how many leading terms count as the first year.
const firstYearTerms = 3

// policy is the resolved set of numeric limits for one run.
type policy struct {
	regular    domain.CreditLimits
	firstYear  domain.CreditLimits
	majorLimit int // 0 = unlimited
	maxTerms   int
}

// resolvePolicy validates prefs and fills defaults.
func resolvePolicy(prefs domain.Preferences) (policy, error) {
	if prefs.Start.Season.Index() < 0 || prefs.Start.Year <= 0 {
		return policy{}, fmt.Errorf("%w: start term %q", ErrInvalidPreferences, prefs.Start)
	}
	if prefs.MaxTerms < 0 {
		return policy{}, fmt.Errorf("%w: max terms must not be negative", ErrInvalidPreferences)
	}

	p := policy{maxTerms: domain.PositiveOr(domain.DefaultMaxTerms, prefs.MaxTerms)}
	switch prefs.Approach {
	case domain.ApproachCredits, "":
		p.regular = domain.CreditLimits{
			FallWinter: domain.PositiveOr(domain.DefaultFallWinterCredits, prefs.Credits.FallWinter),
			Spring:     domain.PositiveOr(domain.DefaultSpringCredits, prefs.Credits.Spring),
		}
		p.firstYear = p.regular
		if prefs.LimitFirstYear && prefs.FirstYear != nil {
			p.firstYear = domain.CreditLimits{
				FallWinter: domain.PositiveOr(p.regular.FallWinter, prefs.FirstYear.FallWinter),
				Spring:     domain.PositiveOr(p.regular.Spring, prefs.FirstYear.Spring),
			}
		}
		p.majorLimit = domain.PositiveOr(domain.DefaultMajorClassLimit, prefs.MajorClassLimit)
	case domain.ApproachSemester:
		p.regular = semesterCaps
		p.firstYear = semesterCaps
		if prefs.LimitFirstYear {
			p.firstYear = semesterFirstYearCaps
		}
	default:
		return policy{}, fmt.Errorf("%w: unknown approach %q", ErrInvalidPreferences, prefs.Approach)
	}
	return p, nil
}

// capFor returns the credit cap of the term at index (0-based) in season.
func (p policy) capFor(index int, season domain.Season) int {
	limits := p.regular
	if index < firstYearTerms {
		limits = p.firstYear
	}
	if season == domain.SeasonSpring {
		return limits.Spring
	}
	return limits.FallWinter
}
