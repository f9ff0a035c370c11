package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frankasd12/NibbleCheck/internal/api"
	"github.com/frankasd12/NibbleCheck/internal/db"
	"github.com/spf13/cobra"
)

// NewServeCommand runs the HTTP API until SIGINT/SIGTERM.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, closeLog, err := loadRuntime()
			if err != nil {
				return err
			}
			defer closeLog()

			svc, closeSvc, err := buildService(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeSvc()

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Port),
				Handler:           api.NewRouter(svc, cfg.CORSAllowOrigins),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("nibblecheck listening", "addr", srv.Addr, "floor", svc.Floor())
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server error: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

// NewMigrateCommand applies schema migrations and exits.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeLog, err := loadRuntime()
			if err != nil {
				return err
			}
			defer closeLog()

			cfg.AutoMigrate = false
			sqlDB, err := openDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := db.Migrate(sqlDB); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
