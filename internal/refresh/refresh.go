// Package refresh keeps the catalogue cache warm by periodically running
// the reconciliation pass in the background.
package refresh

import (
	"context"
	"time"

	"joiefull/internal/service"

	"github.com/rs/zerolog"
)

// Config holds refresher configuration.
type Config struct {
	Interval time.Duration
}

// Run starts the refresher and blocks until ctx is cancelled. One pass runs
// immediately so the cache is populated before the first tick.
func Run(ctx context.Context, svc service.CatalogueService, cfg Config, logger zerolog.Logger) {
	logger = logger.With().Str("component", "catalogue-refresher").Logger()

	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info().Dur("interval", interval).Msg("catalogue refresher started")

	refresh(ctx, svc, logger)

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("catalogue refresher stopping")
			return
		case <-ticker.C:
			refresh(ctx, svc, logger)
		}
	}
}

// refresh runs one reconciliation pass. GetProducts refreshes the catalogue
// cache and backfills overlay rows as side effects; the merged result is
// discarded.
func refresh(ctx context.Context, svc service.CatalogueService, logger zerolog.Logger) {
	products, err := svc.GetProducts(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("background catalogue refresh failed")
		return
	}

	logger.Debug().Int("count", len(products)).Msg("catalogue refreshed")
}
