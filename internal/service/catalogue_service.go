package service

import (
	"context"
	"fmt"

	"joiefull/internal/catalogue"
	"joiefull/internal/model"
	"joiefull/internal/repository"

	"github.com/rs/zerolog"
)

// catalogueService implements CatalogueService. It reconciles the remote
// catalogue with the local overlay store: remote fields are authoritative
// for display data, the overlay is authoritative for favorite and rating.
type catalogueService struct {
	source      catalogue.Source
	productRepo repository.ProductRepository
	cacheRepo   repository.CatalogueCacheRepository
	logger      zerolog.Logger
}

// NewCatalogueService creates a new catalogue service.
func NewCatalogueService(
	source catalogue.Source,
	productRepo repository.ProductRepository,
	cacheRepo repository.CatalogueCacheRepository,
	logger zerolog.Logger,
) CatalogueService {
	return &catalogueService{
		source:      source,
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		logger:      logger.With().Str("service", "catalogue").Logger(),
	}
}

// GetProducts fetches the remote catalogue, merges it with the local
// overlay and backfills overlay rows for ids seen for the first time.
// Output order follows the remote fetch; no sorting is applied.
//
// When the remote fetch fails the service degrades instead of erroring:
// it serves the last cached catalogue snapshot, or, with an empty cache,
// one stub product per overlay row so favorites and ratings survive.
func (s *catalogueService) GetProducts(ctx context.Context) ([]model.Product, error) {
	remote, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("remote catalogue fetch failed, serving degraded catalogue")
		return s.degradedProducts(ctx)
	}

	products, err := s.mergeWithOverlay(ctx, remote, true)
	if err != nil {
		return nil, err
	}

	// Refresh the snapshot consulted when the remote source is down.
	// Failure here must not fail the request.
	if err := s.cacheRepo.ReplaceAll(ctx, remote); err != nil {
		s.logger.Warn().Err(err).Msg("failed to refresh catalogue cache")
	}

	s.logger.Debug().Int("count", len(products)).Msg("catalogue reconciled")

	return products, nil
}

// GetProduct runs the full reconciliation and selects the matching entry.
// The remote source has no single-product endpoint, so a targeted fetch is
// not possible.
func (s *catalogueService) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	products, err := s.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	s.logger.Debug().Int("product_id", id).Msg("product not found in merged catalogue")

	return nil, model.ErrProductNotFound
}

// ToggleFavorite flips the favorite flag for a product. The flip happens in
// a single store statement, so concurrent toggles for the same product
// serialise instead of losing updates. The remote like count is never
// touched; it is a catalogue-supplied aggregate, not the per-user flag.
func (s *catalogueService) ToggleFavorite(ctx context.Context, id int) (*model.ProductLocalInfo, error) {
	info, err := s.productRepo.ToggleFavorite(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to toggle favorite")
		return nil, fmt.Errorf("unable to set favorite: %w", err)
	}

	return info, nil
}

// mergeWithOverlay combines catalogue records with their overlay rows.
// With backfill set, ids missing from the overlay get a default row
// written before the merge result is returned.
func (s *catalogueService) mergeWithOverlay(ctx context.Context, remote []model.CatalogueProduct, backfill bool) ([]model.Product, error) {
	locals, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read overlay store")
		return nil, fmt.Errorf("failed to read overlay store: %w", err)
	}

	byID := make(map[int]*model.ProductLocalInfo, len(locals))
	for i := range locals {
		byID[locals[i].ID] = &locals[i]
	}

	var missing []int
	products := make([]model.Product, 0, len(remote))
	for _, apiProduct := range remote {
		local := byID[apiProduct.ID]
		if local == nil {
			missing = append(missing, apiProduct.ID)
		}
		products = append(products, model.Merge(apiProduct, local))
	}

	if backfill && len(missing) > 0 {
		if err := s.productRepo.BackfillDefaults(ctx, missing); err != nil {
			return nil, fmt.Errorf("failed to backfill overlay rows: %w", err)
		}
		s.logger.Debug().Int("count", len(missing)).Msg("first-sight products backfilled")
	}

	return products, nil
}

// degradedProducts serves the catalogue without the remote source: from the
// cache snapshot when one exists, otherwise as overlay-only stubs with
// empty catalogue fields.
func (s *catalogueService) degradedProducts(ctx context.Context) ([]model.Product, error) {
	cached, err := s.cacheRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read catalogue cache")
		return nil, fmt.Errorf("failed to read catalogue cache: %w", err)
	}

	if len(cached) > 0 {
		s.logger.Info().Int("count", len(cached)).Msg("serving catalogue from cache")
		// No backfill here: cached ids were backfilled when the snapshot
		// was taken, and a degraded pass should not write new rows.
		return s.mergeWithOverlay(ctx, cached, false)
	}

	locals, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read overlay store")
		return nil, fmt.Errorf("failed to read overlay store: %w", err)
	}

	products := make([]model.Product, 0, len(locals))
	for _, local := range locals {
		products = append(products, model.Product{
			ID:       local.ID,
			Favorite: local.Favorite,
			Rate:     local.Rate,
		})
	}

	s.logger.Info().Int("count", len(products)).Msg("serving overlay-only catalogue stubs")

	return products, nil
}
