package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"joiefull/internal/model"

	"github.com/rs/zerolog"
)

// catalogueFile is the document name under the catalogue base URL.
const catalogueFile = "clothes.json"

// httpSource implements Source for an HTTP catalogue endpoint serving a
// JSON array of products.
type httpSource struct {
	client *http.Client
	url    string
	logger zerolog.Logger
}

// NewHTTPSource creates a new HTTP-based catalogue source rooted at baseURL.
func NewHTTPSource(baseURL string, timeout time.Duration, logger zerolog.Logger) Source {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &httpSource{
		client: &http.Client{Timeout: timeout},
		url:    baseURL + catalogueFile,
		logger: logger.With().Str("component", "http-catalogue-source").Logger(),
	}
}

// Fetch retrieves and decodes the catalogue document.
func (s *httpSource) Fetch(ctx context.Context) ([]model.CatalogueProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalogue request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("url", s.url).Msg("catalogue request failed")
		return nil, fmt.Errorf("catalogue request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", s.url).
			Msg("catalogue request returned non-2xx status")
		return nil, fmt.Errorf("catalogue request returned status %d", resp.StatusCode)
	}

	var products []model.CatalogueProduct
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		s.logger.Error().Err(err).Str("url", s.url).Msg("failed to decode catalogue response")
		return nil, fmt.Errorf("failed to decode catalogue response: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("url", s.url).
		Msg("catalogue fetched")

	return products, nil
}
