package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/app"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/elective"
	"github.com/alexanderramin/degreeplan/internal/planner"
	"github.com/spf13/cobra"
)

var errPlanCancelled = errors.New("plan cancelled")

type planOptions struct {
	selection planner.Selection
	electives []string
	asJSON    bool
	prefs     *preferenceFlags
}

func newPlanCmd(a *App) *cobra.Command {
	opts := planOptions{prefs: newPreferenceFlags()}
	var english string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a degree from catalog courses",
		Long: "Plan a degree from a major, two minors and an English level.\n" +
			"On a terminal, missing choices are asked for interactively; otherwise\n" +
			"pass --major, --minor1, --minor2 and one --elective per elective section.",
		Example: "  degreeplan plan --major 1 --minor1 2 --minor2 3 --elective 101=3 --elective 301=21",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.selection.EnglishLevel = domain.EnglishLevel(english)
			return a.runPlan(cmd, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.selection.MajorID, "major", 0, "Major course ID")
	cmd.Flags().Int64Var(&opts.selection.Minor1ID, "minor1", 0, "First minor course ID")
	cmd.Flags().Int64Var(&opts.selection.Minor2ID, "minor2", 0, "Second minor course ID")
	cmd.Flags().StringVar(&english, "english", string(domain.EnglishFluent), "fluent, academic-english-1 or academic-english-2")
	cmd.Flags().StringArrayVar(&opts.electives, "elective", nil, "Elective choice as SECTION=CLASS[,CLASS...]")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the schedule as JSON")
	cmd.Flags().AddFlagSet(opts.prefs.FlagSet())

	return cmd
}

func (a *App) runPlan(cmd *cobra.Command, opts planOptions) error {
	ctx := cmd.Context()
	base := a.Defaults
	sel := opts.selection

	if sel.MajorID == 0 {
		if !a.interactive() {
			return fmt.Errorf("%w: --major, --minor1 and --minor2 are required when stdin is not a terminal", planner.ErrInvalidSelection)
		}
		var err error
		if sel, base, err = a.askProgram(cmd, base); err != nil {
			return err
		}
	}
	if err := planner.ValidateSelectionIDs(sel); err != nil {
		return err
	}

	prefs, err := opts.prefs.apply(base)
	if err != nil {
		return err
	}

	wizard, err := a.loadWizard(cmd, sel)
	if err != nil {
		return err
	}
	if len(opts.electives) == 0 && a.interactive() && wizard.Len() > 0 {
		final, err := a.runProgram(newElectiveModel(wizard))
		if err != nil {
			return err
		}
		if m, ok := final.(*electiveModel); !ok || m.cancelled {
			return errPlanCancelled
		}
	} else {
		chosen, err := parseElectiveFlags(opts.electives)
		if err != nil {
			return err
		}
		if err := applyElectives(wizard, chosen); err != nil {
			return err
		}
	}

	resp, err := a.Plans.Plan(ctx, app.PlanRequest{
		Selection:   sel,
		Electives:   wizard.Selections(),
		Preferences: prefs,
	})
	if err != nil {
		return generationFailed(cmd, err)
	}
	return writeSchedule(cmd, resp, opts.asJSON)
}

// askProgram runs the program form and folds its start term and credit caps
// into base.
func (a *App) askProgram(cmd *cobra.Command, base domain.Preferences) (planner.Selection, domain.Preferences, error) {
	ctx := cmd.Context()
	majors, err := a.Catalog.ListCourses(ctx, domain.CourseMajor)
	if err != nil {
		return planner.Selection{}, base, err
	}
	minors, err := a.Catalog.ListCourses(ctx, domain.CourseMinor)
	if err != nil {
		return planner.Selection{}, base, err
	}
	if len(majors) == 0 || len(minors) < 2 {
		return planner.Selection{}, base, errors.New("the catalog needs a major and two minors; run `degreeplan catalog import` first")
	}

	form := programSelection{EnglishLevel: string(domain.EnglishFluent), Start: base.Start.String()}
	if err := programForm(majors, minors, &form).Run(); err != nil {
		return planner.Selection{}, base, err
	}

	if form.Start != "" {
		if base.Start, err = domain.ParseTerm(form.Start); err != nil {
			return planner.Selection{}, base, err
		}
	}
	base.Credits.FallWinter = domain.PositiveOr(base.Credits.FallWinter, atoiOrZero(form.FallWinter))
	base.Credits.Spring = domain.PositiveOr(base.Credits.Spring, atoiOrZero(form.Spring))

	return planner.Selection{
		MajorID:      form.MajorID,
		Minor1ID:     form.Minor1ID,
		Minor2ID:     form.Minor2ID,
		EnglishLevel: domain.EnglishLevel(form.EnglishLevel),
	}, base, nil
}

// loadWizard fetches the selected courses plus any corequisite their
// elective classes name outside the course.
func (a *App) loadWizard(cmd *cobra.Command, sel planner.Selection) (*elective.Wizard, error) {
	ctx := cmd.Context()
	courses := make([]*domain.Course, 0, 3)
	for _, id := range []int64{sel.MajorID, sel.Minor1ID, sel.Minor2ID} {
		c, err := a.Catalog.GetCourse(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading course %d: %w", id, err)
		}
		courses = append(courses, c)
	}

	known := make(map[int64]bool)
	for _, c := range courses {
		for _, s := range c.Sections {
			for _, cl := range s.Classes {
				known[cl.ID] = true
			}
		}
	}
	var extra []domain.Class
	for _, c := range courses {
		for _, s := range c.ElectiveSections() {
			for _, cl := range s.Classes {
				for _, id := range cl.Corequisites {
					if known[id] {
						continue
					}
					co, err := a.Catalog.GetClass(ctx, id)
					if err != nil {
						return nil, fmt.Errorf("loading corequisite %d of %s: %w", id, cl.Number, err)
					}
					known[id] = true
					extra = append(extra, *co)
				}
			}
		}
	}
	return elective.NewWizard(courses, extra...), nil
}

// parseElectiveFlags parses repeated SECTION=CLASS[,CLASS...] values.
func parseElectiveFlags(values []string) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(values))
	for _, v := range values {
		sectionStr, classesStr, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("--elective %q: expected SECTION=CLASS[,CLASS...]", v)
		}
		section, err := strconv.ParseInt(strings.TrimSpace(sectionStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("--elective %q: bad section id", v)
		}
		for _, part := range strings.Split(classesStr, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("--elective %q: bad class id %q", v, part)
			}
			out[section] = append(out[section], id)
		}
	}
	return out, nil
}

// applyElectives replays flag choices through the wizard so every section's
// credit target is enforced the same way the interactive view does.
func applyElectives(w *elective.Wizard, chosen map[int64][]int64) error {
	seen := make(map[int64]bool, len(chosen))
	for !w.Done() {
		section, _ := w.Current()
		seen[section.ID] = true
		for _, id := range chosen[section.ID] {
			if err := w.Toggle(id); err != nil {
				return fmt.Errorf("%w: %v", planner.ErrUnknownElective, err)
			}
		}
		if err := w.Advance(); err != nil {
			return fmt.Errorf("section %d (%s): %w", section.ID, section.Name, err)
		}
	}
	for id := range chosen {
		if !seen[id] {
			return fmt.Errorf("%w: section %d is not an elective section of the selected courses", planner.ErrUnknownElective, id)
		}
	}
	return nil
}
