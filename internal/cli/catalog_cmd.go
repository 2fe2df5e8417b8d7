package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/degreeplan/internal/cli/formatter"
	"github.com/alexanderramin/degreeplan/internal/contract"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the course catalog",
	}

	cmd.AddCommand(
		newCatalogImportCmd(a),
		newCatalogListCmd(a),
		newCatalogShowCmd(a),
	)

	return cmd
}

func newCatalogImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import courses and classes from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Import.ImportCatalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(args[0], result))
			return nil
		},
	}
}

func newCatalogListCmd(a *App) *cobra.Command {
	var typ string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := a.Catalog.ListCourses(cmd.Context(), domain.CourseType(typ))
			if err != nil {
				return err
			}
			payload := contract.FromCourses(courses)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), payload)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseList(payload))
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", "", "Filter by type: major, minor, religion, eil or core")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}

func newCatalogShowCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <course-id>",
		Short: "Show a course with its sections and classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid course id %q", args[0])
			}
			course, err := a.Catalog.GetCourse(cmd.Context(), id)
			if err != nil {
				return err
			}
			payload := contract.FromCourse(course)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), payload)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourse(payload))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}
