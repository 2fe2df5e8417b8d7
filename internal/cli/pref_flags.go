package cli

import (
	"github.com/alexanderramin/degreeplan/internal/contract"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/spf13/pflag"
)

// preferenceFlags is the generation flag set shared by plan and generate.
type preferenceFlags struct {
	fs *pflag.FlagSet

	payload         contract.PreferencesPayload
	firstYearFW     int
	firstYearSpring int
}

func newPreferenceFlags() *preferenceFlags {
	p := &preferenceFlags{fs: pflag.NewFlagSet("preferences", pflag.ContinueOnError)}
	p.fs.StringVar(&p.payload.StartSemester, "start", "", `First term, e.g. "Fall 2025"`)
	p.fs.StringVar(&p.payload.Approach, "approach", "", "credits-based or semester-based")
	p.fs.IntVar(&p.payload.MajorClassLimit, "major-limit", 0, "Max major classes per term")
	p.fs.IntVar(&p.payload.FallWinterCredits, "fall-winter-credits", 0, "Credit cap for Fall and Winter")
	p.fs.IntVar(&p.payload.SpringCredits, "spring-credits", 0, "Credit cap for Spring")
	p.fs.BoolVar(&p.payload.LimitFirstYear, "limit-first-year", false, "Use separate caps for the first three terms")
	p.fs.IntVar(&p.firstYearFW, "first-year-fall-winter", 0, "First-year Fall/Winter cap")
	p.fs.IntVar(&p.firstYearSpring, "first-year-spring", 0, "First-year Spring cap")
	p.fs.IntVar(&p.payload.MaxTerms, "max-terms", 0, "Iteration ceiling")
	return p
}

// FlagSet returns the flags for merging into a cobra command.
func (p *preferenceFlags) FlagSet() *pflag.FlagSet { return p.fs }

// apply overlays the flags that were set on base. Unset flags keep base's
// values, including its first-year settings.
func (p *preferenceFlags) apply(base domain.Preferences) (domain.Preferences, error) {
	payload := p.payload
	if p.fs.Changed("first-year-fall-winter") || p.fs.Changed("first-year-spring") {
		payload.FirstYearLimits = &contract.CreditLimitsPayload{
			FallWinterCredits: p.firstYearFW,
			SpringCredits:     p.firstYearSpring,
		}
	}
	prefs, err := payload.ToDomain(base)
	if err != nil {
		return domain.Preferences{}, err
	}
	if !p.fs.Changed("limit-first-year") {
		prefs.LimitFirstYear = base.LimitFirstYear
	}
	if payload.FirstYearLimits == nil {
		prefs.FirstYear = base.FirstYear
	}
	return prefs, nil
}
