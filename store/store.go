package store

import (
	"context"
	"errors"

	"loopcart/models"
)

// Store errors. Controllers map these onto HTTP status codes.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore is the persistence boundary for user records. The Mongo
// implementation is the only real one; tests substitute fakes.
type UserStore interface {
	// Create inserts a new user, assigning its id and timestamps. A violation
	// of the unique email index is returned as ErrDuplicateEmail.
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// All returns every user. The dashboard aggregates over the full set;
	// acceptable at this scale.
	All(ctx context.Context) ([]models.User, error)
	// AddToWishlist atomically adds a product id to the user's wishlist and
	// returns the updated list. Adding a present id is a no-op.
	AddToWishlist(ctx context.Context, id, productID string) ([]string, error)
	// RemoveFromWishlist atomically removes a product id and returns the
	// updated list. Removing an absent id is a no-op.
	RemoveFromWishlist(ctx context.Context, id, productID string) ([]string, error)
}
