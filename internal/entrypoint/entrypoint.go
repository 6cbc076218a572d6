package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mrlokans/transcripts/internal/config"
	"github.com/mrlokans/transcripts/internal/database"
	http_controllers "github.com/mrlokans/transcripts/internal/http"
	"github.com/mrlokans/transcripts/internal/logging"
)

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// within the configured timeout. Resources the router depends on are closed
// by the caller after Serve returns.
func Serve(router *gin.Engine, cfg *config.Config, logger zerolog.Logger) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	listenErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	// SIGKILL cannot be caught, so only SIGINT and SIGTERM are handled.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Info().Dur("timeout", timeout).Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info().Msg("Server exiting")
	return nil
}

// Run opens and migrates the configured database and serves the read-only
// transcripts API over it.
func Run(cfg *config.Config, logger zerolog.Logger, version string) error {
	logger.Info().Str("version", version).Msg("Starting transcripts API")

	db, err := database.Open(cfg.Database, logging.GormLevel(cfg.Database.LogLevel))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing database")
		}
	}()

	if err := db.Migrate(); err != nil {
		return err
	}
	logger.Info().Str("database", cfg.Database.Target()).Msg("Database ready")

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database: db,
		Reader:   db,
		Logger:   logger,
		Version:  version,
	})

	return Serve(router, cfg, logger)
}
