package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/app"
	"github.com/alexanderramin/degreeplan/internal/contract"
)

// FormatCourseList renders course headers as a table.
func FormatCourseList(courses []contract.CoursePayload) string {
	if len(courses) == 0 {
		return Dim("No courses in the catalog. Import one with `degreeplan catalog import <file>`.") + "\n"
	}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			Bold(c.Name),
			CategoryStyle(typeCategory(c.Type)).Render(c.Type),
			valueOr(c.Holokai, Dim("--")),
		})
	}
	return RenderTable([]string{"ID", "NAME", "TYPE", "HOLOKAI"}, rows)
}

// FormatCourse renders a course with its sections and classes.
func FormatCourse(c contract.CoursePayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("Type:"), c.Type)
	if c.Holokai != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Holokai:"), c.Holokai)
	}
	if c.EILLevel > 0 {
		fmt.Fprintf(&b, "%s %d\n", Dim("English level:"), c.EILLevel)
	}

	for _, s := range c.Sections {
		b.WriteString("\n" + Bold(s.Name) + "  " + Dim(s.Requirement) + "\n")
		for _, cl := range s.Classes {
			line := fmt.Sprintf("  %-10s %s (%d cr)", cl.Number, cl.Name, cl.Credits)
			if len(cl.SemestersOffered) > 0 {
				line += " " + Dim(strings.Join(cl.SemestersOffered, "/"))
			}
			b.WriteString(line + "\n")
		}
	}
	return RenderBox(c.Name, strings.TrimRight(b.String(), "\n"))
}

func FormatImportResult(path string, r *app.ImportResult) string {
	return fmt.Sprintf("%s %s: %d courses, %d sections, %d classes\n",
		StyleOK.Render("Imported"), path, r.CourseCount, r.SectionCount, r.ClassCount)
}

func typeCategory(courseType string) string {
	if courseType == "core" {
		return "filler"
	}
	return courseType
}
