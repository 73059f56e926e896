package ui

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/taskboard/internal/db"
	"github.com/javiermolinar/taskboard/internal/logging"
	"github.com/javiermolinar/taskboard/internal/server"
)

func (a *App) serveCmd() *cobra.Command {
	var (
		addr   string
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task collection over HTTP",
		Long: `Serve a task collection backed by SQLite at /api/tasks.

The board and the other commands can point at it with --url.

Example:
  taskboard serve --addr=:8080 --db=./tasks.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.config.Server.Addr
			}
			if dbPath == "" {
				dbPath = a.config.Storage.DBPath
			}

			level := a.config.Log.Level
			if a.debug {
				level = "debug"
			}
			logger := logging.Console(level)

			repo, err := db.New(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("closing database", "err", err)
				}
			}()

			srv, err := server.New(repo, server.WithLogger(logger))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("using database", "path", dbPath)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default from config)")

	return cmd
}
