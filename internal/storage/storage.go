// Package storage holds the persistence layer for users and products.
// Both a MongoDB and an in-memory implementation satisfy the interfaces.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/arzan03/ProductHub/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid object id")
)

// UserStore persists accounts. Email uniqueness is not enforced here;
// callers check FindByEmail before Insert.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

// ProductStore persists products.
type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	// UpdateByID sets the mutable fields. An id with no matching document
	// is not an error.
	UpdateByID(ctx context.Context, id string, in models.ProductInput) error
	DeleteByID(ctx context.Context, id string) (int64, error)
	ListByCreatedDesc(ctx context.Context) ([]models.Product, error)
	// Search matches pattern as an unanchored regular expression against
	// name, company or category.
	Search(ctx context.Context, pattern string) ([]models.Product, error)
}

// now is truncated to milliseconds, the resolution MongoDB stores dates at,
// so records returned from Insert equal what a later read returns.
func now(clock func() time.Time) time.Time {
	return clock().UTC().Truncate(time.Millisecond)
}
