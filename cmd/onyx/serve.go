package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andib0/onyx/internal/api"
	"github.com/andib0/onyx/internal/auth"
	"github.com/andib0/onyx/internal/config"
	"github.com/andib0/onyx/internal/db"
	"github.com/andib0/onyx/pkg/audit"
)

var (
	serveConfigPath string
	serveAddr       string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(serveConfigPath)
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer database.Close()

		auditLog := audit.NewSQLiteLogger(database.DB)
		if err := auditLog.Init(); err != nil {
			return err
		}
		defer auditLog.Close()

		if cfg.Seed.Enabled {
			summary, err := database.Seed()
			if err != nil {
				return err
			}
			if summary.Foods+summary.SupplementRefs+summary.GymPrograms > 0 {
				slog.Info("seeded catalogs",
					"foods", summary.Foods,
					"supplementRefs", summary.SupplementRefs,
					"gymPrograms", summary.GymPrograms)
			}
		}

		authn := auth.New(cfg.Auth.JWTSecret, cfg.Auth.RefreshSecret,
			cfg.Auth.AccessExpiryMin, cfg.Auth.RefreshExpiryDay)
		handler := api.New(database, authn, auditLog, cfg)

		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           api.SecurityHeaders(mux),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Expired refresh tokens accumulate otherwise.
		purgeDone := make(chan struct{})
		go func() {
			ticker := time.NewTicker(time.Hour)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if err := database.PurgeExpiredRefreshTokens(); err != nil {
						slog.Error("purging refresh tokens", "error", err)
					}
				case <-purgeDone:
					return
				}
			}
		}()
		defer close(purgeDone)

		errCh := make(chan error, 1)
		go func() {
			slog.Info("onyx listening", "addr", cfg.Server.Addr, "database", cfg.Database.Path, "version", version)
			errCh <- srv.ListenAndServe()
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case s := <-sig:
			slog.Info("shutting down", "signal", s.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "path to config.toml")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
