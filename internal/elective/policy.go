package elective

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

var (
	// ErrPolicyUnmet is returned when a section's selection misses its credit target.
	ErrPolicyUnmet = errors.New("elective requirement not met")
	// ErrNotInSection is returned when toggling a class the current section does not list.
	ErrNotInSection = errors.New("class not in section")
	// ErrComplete is returned when operating on a finished wizard.
	ErrComplete = errors.New("elective selection already complete")
)

// CheckPolicy reports whether credits (corequisite-inclusive) and count
// (classes chosen from the section) satisfy the section target. Credits must
// land in [target, target+1]; a section whose classes all carry the same
// credit value is also satisfied by exactly ceil(target/credit) choices.
// Sections without a positive target are always satisfied.
func CheckPolicy(section domain.Section, credits, count int) error {
	target := section.CreditsNeeded
	if target <= 0 {
		return nil
	}
	if credits >= target && credits <= target+1 {
		return nil
	}
	if per, ok := section.UniformCredits(); ok {
		need := (target + per - 1) / per
		if count == need {
			return nil
		}
		return fmt.Errorf("%w: %s needs %d class(es) of %d credits, %d selected",
			ErrPolicyUnmet, section.Name, need, per, count)
	}
	return fmt.Errorf("%w: %s needs %d-%d credits, %d selected",
		ErrPolicyUnmet, section.Name, target, target+1, credits)
}
