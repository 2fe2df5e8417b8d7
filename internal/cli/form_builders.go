package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/charmbracelet/huh"
)

// programSelection is filled in by the program form.
type programSelection struct {
	MajorID      int64
	Minor1ID     int64
	Minor2ID     int64
	EnglishLevel string
	Start        string
	FallWinter   string
	Spring       string
}

// courseOptions labels each course with its Holokai when it has one.
func courseOptions(courses []*domain.Course) []huh.Option[int64] {
	options := make([]huh.Option[int64], 0, len(courses))
	for _, c := range courses {
		label := c.Name
		if c.Holokai != "" {
			label = fmt.Sprintf("%s (%s)", c.Name, c.Holokai)
		}
		options = append(options, huh.NewOption(label, c.ID))
	}
	return options
}

// programForm asks for the major, both minors, the English level and the
// start term and credit caps.
func programForm(majors, minors []*domain.Course, sel *programSelection) *huh.Form {
	englishOptions := []huh.Option[string]{
		huh.NewOption("Fluent", string(domain.EnglishFluent)),
		huh.NewOption("Academic English 1", string(domain.EnglishLevel1)),
		huh.NewOption("Academic English 2", string(domain.EnglishLevel2)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Major").
				Options(courseOptions(majors)...).
				Value(&sel.MajorID),
			huh.NewSelect[int64]().
				Title("First minor").
				Options(courseOptions(minors)...).
				Value(&sel.Minor1ID),
			huh.NewSelect[int64]().
				Title("Second minor").
				Options(courseOptions(minors)...).
				Value(&sel.Minor2ID).
				Validate(func(id int64) error {
					if id == sel.Minor1ID {
						return errors.New("pick two different minors")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("English level").
				Options(englishOptions...).
				Value(&sel.EnglishLevel),
		),
		huh.NewGroup(
			termInput("Start term", &sel.Start),
			creditInput("Fall/Winter credit cap", strconv.Itoa(domain.DefaultFallWinterCredits), &sel.FallWinter),
			creditInput("Spring credit cap", strconv.Itoa(domain.DefaultSpringCredits), &sel.Spring),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

func termInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("Fall 2025").
		Value(value).
		Validate(validateOptionalTerm)
}

func creditInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validatePositiveInt)
}

// validateOptionalTerm accepts empty or a "<Season> <Year>" label.
func validateOptionalTerm(s string) error {
	if s == "" {
		return nil
	}
	if _, err := domain.ParseTerm(s); err != nil {
		return errors.New(`use "<Season> <Year>", e.g. Fall 2025`)
	}
	return nil
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

// atoiOrZero parses a validated optional integer field.
func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
