package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"fooddelivery/models"
	"fooddelivery/services"
)

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(coll *mongo.Collection) *CartRepository {
	return &CartRepository{coll: coll}
}

// Insert relies on the unique userId index: the second cart for a user comes
// back as ErrDuplicateCart so the caller can fall back to the existing one.
func (r *CartRepository) Insert(ctx context.Context, cart *models.ShoppingCart) error {
	_, err := r.coll.InsertOne(ctx, cart)
	if mongo.IsDuplicateKeyError(err) {
		return services.ErrDuplicateCart
	}
	return err
}

func (r *CartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID string) (*models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) FindAll(ctx context.Context) ([]models.ShoppingCart, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	carts := []models.ShoppingCart{}
	if err := cursor.All(ctx, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

// Replace is a compare-and-set on the version field, same contract as the
// restaurant repository.
func (r *CartRepository) Replace(ctx context.Context, cart *models.ShoppingCart) error {
	previous := cart.Version
	cart.Version = previous + 1

	result, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": cart.ID, "version": previous},
		cart,
	)
	if err != nil {
		cart.Version = previous
		return err
	}
	if result.MatchedCount == 0 {
		cart.Version = previous
		if count, err := r.coll.CountDocuments(ctx, bson.M{"_id": cart.ID}); err == nil && count == 0 {
			return services.ErrNotFound
		}
		return services.ErrConflict
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
