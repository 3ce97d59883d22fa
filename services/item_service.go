package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fooddelivery/models"
)

type ItemService struct {
	store       ItemStore
	restaurants *RestaurantService
}

func NewItemService(store ItemStore, restaurants *RestaurantService) *ItemService {
	return &ItemService{store: store, restaurants: restaurants}
}

// ItemUpdate carries a partial update; nil fields keep the stored value.
type ItemUpdate struct {
	RestaurantID *primitive.ObjectID `json:"restaurantId"`
	ItemName     *string             `json:"itemName"`
	Price        *float64            `json:"price"`
}

// AddItem creates the item and pushes a snapshot into the owning restaurant's
// embedded menu. The two writes are not atomic; the items collection is the
// source of truth if they diverge.
func (s *ItemService) AddItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if _, err := s.restaurants.FindByID(ctx, item.RestaurantID); err != nil {
		return nil, fmt.Errorf("restaurant %s: %w", item.RestaurantID.Hex(), err)
	}

	item.ID = primitive.NewObjectID()
	item.Quantity = 0
	if err := s.store.Insert(ctx, item); err != nil {
		return nil, err
	}

	snapshot := models.Item{ID: item.ID, ItemName: item.ItemName, Price: item.Price}
	if err := s.restaurants.AddItemToMenu(ctx, item.RestaurantID, snapshot); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return s.store.FindAll(ctx)
}

func (s *ItemService) GetItemByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	return s.store.FindByID(ctx, id)
}

// UpdateItem merges the supplied fields and propagates the resulting
// name/price into the owning restaurant's menu snapshot.
func (s *ItemService) UpdateItem(ctx context.Context, id primitive.ObjectID, update *ItemUpdate) (*models.Item, error) {
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.RestaurantID != nil {
		current.RestaurantID = *update.RestaurantID
	}
	if update.ItemName != nil {
		current.ItemName = *update.ItemName
	}
	if update.Price != nil {
		current.Price = *update.Price
	}

	if err := s.store.Replace(ctx, current); err != nil {
		return nil, err
	}
	if err := s.restaurants.UpdateMenuItem(ctx, current.RestaurantID, id, current.ItemName, current.Price); err != nil {
		return nil, err
	}
	return current, nil
}

// DeleteItem removes the document and its menu snapshot. Carts holding the
// item keep their copies; snapshots are never purged.
func (s *ItemService) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	item, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	return s.restaurants.RemoveItemFromMenu(ctx, item.RestaurantID, id)
}

// GetItemsByRestaurantID reports an empty result as ErrNoItemsForRestaurant.
// "Restaurant has no items yet" is indistinguishable from a bad id here;
// callers rely on the error so the behavior stays.
func (s *ItemService) GetItemsByRestaurantID(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Item, error) {
	items, err := s.store.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("restaurant %s: %w", restaurantID.Hex(), ErrNoItemsForRestaurant)
	}
	return items, nil
}
