package service

import (
	"context"

	"joiefull/internal/model"
)

// CatalogueService defines operations over the merged catalogue view.
type CatalogueService interface {
	// GetProducts retrieves the full catalogue merged with the local
	// overlay, backfilling missing overlay rows.
	GetProducts(ctx context.Context) ([]model.Product, error)

	// GetProduct retrieves a single merged product by id.
	GetProduct(ctx context.Context, id int) (*model.Product, error)

	// ToggleFavorite flips the favorite flag for a product and returns
	// the updated overlay state.
	ToggleFavorite(ctx context.Context, id int) (*model.ProductLocalInfo, error)
}

// ReviewService defines operations for review management.
type ReviewService interface {
	// AddReview creates the review for a (user, product) pair or replaces
	// the existing one, and sets the product overlay rating accordingly.
	AddReview(ctx context.Context, userID, productID, rate int, comment string) (*model.Review, error)

	// GetReview retrieves the review for a (user, product) pair.
	GetReview(ctx context.Context, userID, productID int) (*model.Review, error)
}

// UserService defines operations for user management.
type UserService interface {
	// GetByID retrieves a single user by id.
	GetByID(ctx context.Context, id int) (*model.User, error)

	// Create creates a new user.
	Create(ctx context.Context, name, picture string) (*model.User, error)
}
