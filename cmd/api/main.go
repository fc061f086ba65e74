package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"joiefull/internal/catalogue"
	"joiefull/internal/config"
	"joiefull/internal/database"
	"joiefull/internal/handler"
	"joiefull/internal/refresh"
	"joiefull/internal/repository"
	"joiefull/internal/router"
	"joiefull/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting joiefull API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Create schema and seed the default user
	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	reviewRepo := repository.NewReviewRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	cacheRepo := repository.NewCatalogueCacheRepository(pool, logger)

	// Initialize catalogue source with S3 and HTTP fallback
	httpSource := catalogue.NewHTTPSource(
		cfg.Catalogue.BaseURL,
		time.Duration(cfg.Catalogue.TimeoutSeconds)*time.Second,
		logger,
	)
	var source catalogue.Source

	if cfg.Catalogue.S3Enabled {
		// Create S3 source
		s3Source, err := catalogue.NewS3Source(ctx, cfg.Catalogue.S3Bucket, cfg.Catalogue.S3Region, cfg.Catalogue.S3Key, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 catalogue source, falling back to HTTP source")
			source = httpSource
		} else {
			source = s3Source
		}
	} else {
		source = httpSource
		logger.Info().Str("base_url", cfg.Catalogue.BaseURL).Msg("using HTTP catalogue source")
	}

	// Initialize services
	catalogueService := service.NewCatalogueService(source, productRepo, cacheRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, productRepo, userRepo, logger)
	userService := service.NewUserService(userRepo, logger)

	// Start the background catalogue refresher if configured
	wg := &sync.WaitGroup{}
	if cfg.Catalogue.RefreshSeconds > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			refresh.Run(ctx, catalogueService, refresh.Config{
				Interval: time.Duration(cfg.Catalogue.RefreshSeconds) * time.Second,
			}, logger)
		}()
	}

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(catalogueService, logger)
	reviewHandler := handler.NewReviewHandler(reviewService, logger)
	userHandler := handler.NewUserHandler(userService, logger)

	// Initialize router
	mux := router.New(productHandler, reviewHandler, userHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		// Stop the refresher and wait for it to finish
		cancel()
		wg.Wait()

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
