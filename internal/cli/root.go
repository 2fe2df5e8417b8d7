package cli

import (
	"log/slog"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans   service.PlanService
	Catalog service.CatalogService
	Import  service.ImportService

	// Defaults seed every generation run; flags and request payloads
	// override them field by field.
	Defaults domain.Preferences
	HTTPAddr string
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// RunProgram drives an interactive bubbletea model to completion.
	// Nil runs a full-screen tea.Program.
	RunProgram func(m tea.Model) (tea.Model, error)
}

// NewRootCmd creates the top-level "degreeplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "degreeplan",
		Short:         "Degree schedule planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newGenerateCmd(app),
		newCatalogCmd(app),
		newServeCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runProgram(m tea.Model) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}
