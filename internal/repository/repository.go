package repository

import (
	"context"

	"joiefull/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for the local product overlay,
// the per-user state (favorite, rating) keyed by remote catalogue id.
type ProductRepository interface {
	// GetAll retrieves every overlay row.
	GetAll(ctx context.Context) ([]model.ProductLocalInfo, error)

	// GetByID retrieves a single overlay row, or nil if absent.
	GetByID(ctx context.Context, id int) (*model.ProductLocalInfo, error)

	// Upsert inserts or replaces an overlay row.
	Upsert(ctx context.Context, info model.ProductLocalInfo) error

	// BackfillDefaults inserts default overlay rows (favorite=false,
	// rate=NULL) for the given ids, skipping ids that already exist.
	BackfillDefaults(ctx context.Context, ids []int) error

	// ToggleFavorite atomically flips the favorite flag for the given id,
	// creating the row (favorite=true) if it does not exist yet, and
	// returns the updated row.
	ToggleFavorite(ctx context.Context, id int) (*model.ProductLocalInfo, error)

	// UpdateRating sets the overlay rating for the given id within the
	// provided transaction, creating the row if absent.
	UpdateRating(ctx context.Context, tx pgx.Tx, id int, rate float64) error
}

// ReviewRepository defines the interface for review data access operations.
type ReviewRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// GetByUserAndProduct retrieves the review for a (user, product) pair,
	// or nil if none exists.
	GetByUserAndProduct(ctx context.Context, userID, productID int) (*model.Review, error)

	// Upsert inserts the review or replaces the existing one for the same
	// (user, product) pair, within the provided transaction.
	Upsert(ctx context.Context, tx pgx.Tx, review *model.Review) error
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// GetByID retrieves a single user by id, or nil if absent.
	GetByID(ctx context.Context, id int) (*model.User, error)

	// Create inserts a new user and fills in its generated id.
	Create(ctx context.Context, user *model.User) error
}

// CatalogueCacheRepository defines the interface for the last-known
// catalogue snapshot, consulted when the remote source is unavailable.
type CatalogueCacheRepository interface {
	// GetAll retrieves the cached catalogue in insertion order.
	GetAll(ctx context.Context) ([]model.CatalogueProduct, error)

	// ReplaceAll atomically replaces the cached catalogue.
	ReplaceAll(ctx context.Context, products []model.CatalogueProduct) error
}
