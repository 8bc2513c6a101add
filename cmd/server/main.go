package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/trade-journal/internal/config"
	"github.com/aristath/trade-journal/internal/database"
	"github.com/aristath/trade-journal/internal/modules/journal"
	"github.com/aristath/trade-journal/internal/modules/settings"
	"github.com/aristath/trade-journal/internal/scheduler"
	"github.com/aristath/trade-journal/internal/server"
	"github.com/aristath/trade-journal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{Level: "info", Pretty: true})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting Trade Journal")

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// Ensure schemas
	if err := journal.InitSchema(db.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize trades schema")
	}
	if err := settings.InitSchema(db.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize settings schema")
	}

	// Initialize scheduler with a nightly maintenance pass
	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	maintenance := scheduler.NewMaintenanceJob(db, log)
	if err := sched.AddJob("0 0 3 * * *", maintenance); err != nil {
		log.Fatal().Err(err).Msg("Failed to register maintenance job")
	}
	if err := sched.RunNow(maintenance); err != nil {
		log.Warn().Err(err).Msg("Initial maintenance pass failed")
	}

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:    cfg.Port,
		Log:     log,
		DB:      db,
		Config:  cfg,
		DevMode: cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
