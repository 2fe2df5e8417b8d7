package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/degreeplan/internal/cli"
	"github.com/alexanderramin/degreeplan/internal/config"
	"github.com/alexanderramin/degreeplan/internal/db"
	"github.com/alexanderramin/degreeplan/internal/repository"
	"github.com/alexanderramin/degreeplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	// The local database always backs imports; a configured Postgres URL
	// takes over catalog reads.
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var catalog repository.CatalogReader = repository.NewSQLiteCatalog(database)
	if cfg.CatalogURL != "" {
		pg, err := repository.NewPGCatalog(context.Background(), cfg.CatalogURL)
		if err != nil {
			return err
		}
		defer pg.Close()
		catalog = pg
	}

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Plans:    service.NewPlanService(catalog, cfg.FetchTimeout, observers...),
		Catalog:  service.NewCatalogService(catalog),
		Import:   service.NewImportService(uow, observers...),
		Defaults: cfg.Preferences(),
		HTTPAddr: cfg.HTTPAddr,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
