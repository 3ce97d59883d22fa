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

type ItemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(coll *mongo.Collection) *ItemRepository {
	return &ItemRepository{coll: coll}
}

func (r *ItemRepository) Insert(ctx context.Context, item *models.Item) error {
	_, err := r.coll.InsertOne(ctx, item)
	return err
}

func (r *ItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	var item models.Item
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]models.Item, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) FindByRestaurantID(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Item, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"restaurantId": restaurantID})
	if err != nil {
		return nil, err
	}
	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) Replace(ctx context.Context, item *models.Item) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
