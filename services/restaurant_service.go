package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fooddelivery/models"
)

type RestaurantService struct {
	store RestaurantStore
}

func NewRestaurantService(store RestaurantStore) *RestaurantService {
	return &RestaurantService{store: store}
}

// RestaurantUpdate carries a partial update; nil fields keep the stored value.
type RestaurantUpdate struct {
	Name      *string       `json:"name"`
	Address   *string       `json:"address"`
	Phone     *string       `json:"phone"`
	MenuItems []models.Item `json:"menuItems"`
}

func (s *RestaurantService) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	return s.store.FindAll(ctx)
}

func (s *RestaurantService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	return s.store.FindByID(ctx, id)
}

// Create stamps any embedded menu items with the new restaurant's id so they
// stay associated even before matching documents exist in the items collection.
func (s *RestaurantService) Create(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	restaurant.ID = primitive.NewObjectID()
	if restaurant.MenuItems == nil {
		restaurant.MenuItems = []models.Item{}
	}
	for i := range restaurant.MenuItems {
		restaurant.MenuItems[i].RestaurantID = restaurant.ID
	}
	if err := s.store.Insert(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Update merges the supplied fields over the stored document. A nil MenuItems
// keeps the stored menu; a supplied one merges per item, falling back to the
// stored entry's fields where the patch leaves them zero.
func (s *RestaurantService) Update(ctx context.Context, id primitive.ObjectID, update *RestaurantUpdate) (*models.Restaurant, error) {
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.Address != nil {
		current.Address = *update.Address
	}
	if update.Phone != nil {
		current.Phone = *update.Phone
	}
	if update.MenuItems != nil {
		merged := make([]models.Item, 0, len(update.MenuItems))
		for _, patch := range update.MenuItems {
			item := patch
			item.RestaurantID = id
			if existing := findMenuItem(current.MenuItems, patch.ID); existing != nil {
				if item.ItemName == "" {
					item.ItemName = existing.ItemName
				}
				if item.Price == 0 {
					item.Price = existing.Price
				}
			}
			merged = append(merged, item)
		}
		current.MenuItems = merged
	}

	if err := s.store.Replace(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes the restaurant only. Its documents in the items collection
// are left behind; there is no cascade.
func (s *RestaurantService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.store.Delete(ctx, id)
}

func (s *RestaurantService) AddItemToMenu(ctx context.Context, restaurantID primitive.ObjectID, item models.Item) error {
	restaurant, err := s.store.FindByID(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("restaurant %s: %w", restaurantID.Hex(), err)
	}
	restaurant.MenuItems = append(restaurant.MenuItems, item)
	return s.store.Replace(ctx, restaurant)
}

func (s *RestaurantService) UpdateMenuItem(ctx context.Context, restaurantID, itemID primitive.ObjectID, name string, price float64) error {
	restaurant, err := s.store.FindByID(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("restaurant %s: %w", restaurantID.Hex(), err)
	}
	for i := range restaurant.MenuItems {
		if restaurant.MenuItems[i].ID == itemID {
			restaurant.MenuItems[i].ItemName = name
			restaurant.MenuItems[i].Price = price
		}
	}
	return s.store.Replace(ctx, restaurant)
}

func (s *RestaurantService) RemoveItemFromMenu(ctx context.Context, restaurantID, itemID primitive.ObjectID) error {
	restaurant, err := s.store.FindByID(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("restaurant %s: %w", restaurantID.Hex(), err)
	}
	kept := restaurant.MenuItems[:0]
	for _, it := range restaurant.MenuItems {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	restaurant.MenuItems = kept
	return s.store.Replace(ctx, restaurant)
}

func findMenuItem(items []models.Item, id primitive.ObjectID) *models.Item {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}
