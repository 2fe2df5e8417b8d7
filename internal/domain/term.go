package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTerm is returned for malformed "<Season> <Year>" strings.
var ErrInvalidTerm = errors.New("invalid term")

// Term is one (season, year) scheduling slot.
type Term struct {
	Season Season
	Year   int
}

// ParseTerm parses "Fall 2025" style labels.
func ParseTerm(s string) (Term, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Term{}, fmt.Errorf("%w: %q (expected \"<Season> <Year>\")", ErrInvalidTerm, s)
	}
	season, err := ParseSeason(fields[0])
	if err != nil {
		return Term{}, err
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil || year <= 0 {
		return Term{}, fmt.Errorf("%w: bad year in %q", ErrInvalidTerm, s)
	}
	return Term{Season: season, Year: year}, nil
}

// Next advances one term. The year increments only when Winter follows Fall;
// Spring and the following Fall keep Winter's year.
func (t Term) Next() Term {
	switch t.Season {
	case SeasonFall:
		return Term{Season: SeasonWinter, Year: t.Year + 1}
	case SeasonWinter:
		return Term{Season: SeasonSpring, Year: t.Year}
	default:
		return Term{Season: SeasonFall, Year: t.Year}
	}
}

func (t Term) String() string {
	return fmt.Sprintf("%s %d", t.Season, t.Year)
}
