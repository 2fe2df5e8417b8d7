package formatter

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/contract"
)

// FormatSchedule renders one table per term followed by a summary box.
func FormatSchedule(resp contract.ScheduleResponse) string {
	var b strings.Builder

	for _, term := range resp.Schedule {
		label := fmt.Sprintf("%s %d", term.Type, term.Year)
		b.WriteString(Header(label))
		b.WriteString("  " + Dim(fmt.Sprintf("%d credits", term.TotalCredits)) + "\n")

		rows := make([][]string, 0, len(term.Classes))
		for _, c := range term.Classes {
			rows = append(rows, []string{
				Bold(c.Number),
				c.Name,
				strconv.Itoa(c.Credits),
				CategoryStyle(c.FromCourse).Render(c.FromCourse),
			})
		}
		b.WriteString(RenderTable([]string{"CLASS", "NAME", "CR", "FROM"}, rows))
		b.WriteString("\n")
	}

	b.WriteString(FormatSummary(resp.Summary))
	return b.String()
}

// FormatSummary renders totals, graduation term and per-category credits.
func FormatSummary(s contract.SummaryPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("Graduation:"), Bold(valueOr(s.Graduation, "--")))
	fmt.Fprintf(&b, "%s %d over %d terms\n", Dim("Credits:   "), s.TotalCredits, s.TermCount)
	if s.Shortfall > 0 {
		b.WriteString(StyleWarn.Render(fmt.Sprintf("%d elective credits short of the degree total", s.Shortfall)) + "\n")
	}

	cats := slices.Sorted(maps.Keys(s.CreditsByCategory))
	if len(cats) > 0 {
		parts := make([]string, 0, len(cats))
		for _, cat := range cats {
			parts = append(parts, CategoryStyle(cat).Render(fmt.Sprintf("%s %d", cat, s.CreditsByCategory[cat])))
		}
		b.WriteString(strings.Join(parts, Dim(" · ")) + "\n")
	}
	if s.ReligionCompacted {
		b.WriteString(Dim("Final religion class moved into an earlier term.") + "\n")
	}
	return RenderBox("Summary", strings.TrimRight(b.String(), "\n"))
}

// FormatError renders a failed generation, including stall details.
func FormatError(resp contract.ErrorResponse) string {
	var b strings.Builder
	b.WriteString(StyleError.Render(fmt.Sprintf("%s: %s", resp.Code, resp.Error)) + "\n")
	if resp.Term != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Stuck at:"), resp.Term)
	}
	if len(resp.Remaining) > 0 {
		ids := make([]string, len(resp.Remaining))
		for i, id := range resp.Remaining {
			ids[i] = strconv.FormatInt(id, 10)
		}
		fmt.Fprintf(&b, "%s %s\n", Dim("Unplaced:"), strings.Join(ids, ", "))
	}
	return b.String()
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
