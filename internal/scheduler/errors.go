package scheduler

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

var (
	// ErrStalled indicates a term in which nothing could be placed while
	// classes remained: a cyclic or unreachable prerequisite, or a class that
	// is never offered or never fits.
	ErrStalled = errors.New("schedule stalled")

	// ErrIterationCeiling indicates the run hit its term ceiling. It usually
	// means malformed data rather than a genuine resource conflict.
	ErrIterationCeiling = errors.New("iteration ceiling reached")

	ErrInvalidPreferences = errors.New("invalid preferences")
	ErrInvalidClass       = errors.New("invalid class")
)

// StallError reports the term that stalled and the classes left unscheduled.
type StallError struct {
	Term      domain.Term
	Remaining []int64
}

func (e *StallError) Error() string {
	return fmt.Sprintf("%s: nothing placeable in %s, %d classes remaining %v",
		ErrStalled, e.Term, len(e.Remaining), e.Remaining)
}

func (e *StallError) Unwrap() error { return ErrStalled }
