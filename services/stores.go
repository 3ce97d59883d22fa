package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fooddelivery/models"
)

// Persistence ports. The Mongo implementations live in repository; tests use
// in-memory fakes. A store returns ErrNotFound for a missing document and, for
// versioned replaces, ErrConflict when the stored version moved underneath.

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Replace(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

type RestaurantStore interface {
	Insert(ctx context.Context, r *models.Restaurant) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error)
	FindAll(ctx context.Context) ([]models.Restaurant, error)
	// Replace filters on {_id, version} and bumps the version, returning
	// ErrConflict on a stale write.
	Replace(ctx context.Context, r *models.Restaurant) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ItemStore interface {
	Insert(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error)
	FindAll(ctx context.Context) ([]models.Item, error)
	FindByRestaurantID(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Item, error)
	Replace(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CartStore interface {
	// Insert returns ErrDuplicateCart when the user already has a cart.
	Insert(ctx context.Context, cart *models.ShoppingCart) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ShoppingCart, error)
	FindByUserID(ctx context.Context, userID string) (*models.ShoppingCart, error)
	FindAll(ctx context.Context) ([]models.ShoppingCart, error)
	// Replace is versioned like RestaurantStore.Replace.
	Replace(ctx context.Context, cart *models.ShoppingCart) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
