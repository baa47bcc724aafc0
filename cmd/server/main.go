package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linguaflow/scorereport/internal/api"
	"github.com/linguaflow/scorereport/internal/auth"
	"github.com/linguaflow/scorereport/internal/config"
	"github.com/linguaflow/scorereport/internal/db"
	"github.com/linguaflow/scorereport/internal/identity"
	"github.com/linguaflow/scorereport/internal/logger"
	"github.com/linguaflow/scorereport/internal/repository/sqlstore"
	"github.com/linguaflow/scorereport/internal/services"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	logger.SetDefault(log)

	log.Info().Msg("scoring report server starting")
	log.Debug().
		Str("addr", cfg.Addr).
		Str("db_driver", cfg.DBDriver).
		Str("auth_mode", cfg.AuthMode).
		Strs("admin_roles", cfg.AdminRoles).
		Int("report_max_rows", cfg.ReportMaxRows).
		Int("default_range_days", cfg.DefaultRangeDays).
		Msg("configuration loaded")

	database, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Error().Err(err).Msg("failed to open attempt store")
		os.Exit(1)
	}
	defer database.Close()

	var resolver identity.Resolver
	switch cfg.AuthMode {
	case "remote":
		if cfg.AuthURL == "" {
			log.Error().Msg("AUTH_MODE=remote requires AUTH_URL")
			os.Exit(1)
		}
		resolver = identity.NewClient(cfg.AuthURL, time.Duration(cfg.AuthTimeoutSeconds)*time.Second)
	default:
		resolver = identity.HeaderResolver{}
	}

	attemptRepo := sqlstore.NewAttemptRepository(database)
	policy := auth.NewPolicy(cfg.AdminRoles)

	reportService := services.NewReportService(attemptRepo, policy, cfg.ReportMaxRows)
	attemptService := services.NewAttemptService(attemptRepo, policy)

	srv := api.NewServer(reportService, attemptService, resolver, database, cfg)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info().Str("signal", sig.String()).Msg("initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("scoring report server stopped")
}
