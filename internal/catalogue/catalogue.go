// Package catalogue provides access to the remote Joiefull product catalogue.
package catalogue

import (
	"context"

	"joiefull/internal/model"
)

// Source fetches the full product catalogue from a remote location.
type Source interface {
	// Fetch retrieves all catalogue products in the order the remote
	// source returns them.
	Fetch(ctx context.Context) ([]model.CatalogueProduct, error)
}
