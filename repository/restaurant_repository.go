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

type RestaurantRepository struct {
	coll *mongo.Collection
}

func NewRestaurantRepository(coll *mongo.Collection) *RestaurantRepository {
	return &RestaurantRepository{coll: coll}
}

func (r *RestaurantRepository) Insert(ctx context.Context, restaurant *models.Restaurant) error {
	_, err := r.coll.InsertOne(ctx, restaurant)
	return err
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	restaurants := []models.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// Replace is a compare-and-set on the version field. MatchedCount zero means
// either the document is gone or somebody replaced it since our read.
func (r *RestaurantRepository) Replace(ctx context.Context, restaurant *models.Restaurant) error {
	previous := restaurant.Version
	restaurant.Version = previous + 1

	result, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": restaurant.ID, "version": previous},
		restaurant,
	)
	if err != nil {
		restaurant.Version = previous
		return err
	}
	if result.MatchedCount == 0 {
		restaurant.Version = previous
		if count, err := r.coll.CountDocuments(ctx, bson.M{"_id": restaurant.ID}); err == nil && count == 0 {
			return services.ErrNotFound
		}
		return services.ErrConflict
	}
	return nil
}

func (r *RestaurantRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
