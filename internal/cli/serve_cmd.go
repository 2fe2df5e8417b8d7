package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/degreeplan/internal/httpapi"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(a *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if addr == "" {
				addr = a.HTTPAddr
			}
			srv := a.newServer()
			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from DEGREEPLAN_HTTP_ADDR)")

	return cmd
}

func (a *App) newServer() *httpapi.Server {
	gin.SetMode(gin.ReleaseMode)
	log := a.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return httpapi.NewServer(httpapi.RouterConfig{
		Logger:          log,
		ScheduleHandler: httpapi.NewScheduleHandler(log, a.Plans, a.Defaults),
		CatalogHandler:  httpapi.NewCatalogHandler(log, a.Catalog),
	})
}
