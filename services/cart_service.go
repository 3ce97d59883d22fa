package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fooddelivery/models"
)

type CartService struct {
	store CartStore
	items *ItemService
}

func NewCartService(store CartStore, items *ItemService) *CartService {
	return &CartService{store: store, items: items}
}

// CartUpdate carries a partial update; nil fields keep the stored value.
// Supplied items are re-populated from the items collection like on create.
type CartUpdate struct {
	UserID            *string             `json:"userId"`
	RestaurantID      *primitive.ObjectID `json:"restaurantId"`
	ShoppingCartItems []models.Item       `json:"shoppingCartItems"`
}

// Create builds a cart from authoritative item data: every supplied item is
// re-fetched so the caller cannot set its own prices. Caller quantities are
// kept, defaulting to 1.
func (s *CartService) Create(ctx context.Context, cart *models.ShoppingCart) (*models.ShoppingCart, error) {
	populated, err := s.populateItems(ctx, cart.ShoppingCartItems)
	if err != nil {
		return nil, err
	}

	cart.ID = primitive.NewObjectID()
	cart.ShoppingCartItems = populated
	cart.TotalPrice = cart.Total()
	cart.Version = 0

	if err := s.store.Insert(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) GetAll(ctx context.Context) ([]models.ShoppingCart, error) {
	return s.store.FindAll(ctx)
}

func (s *CartService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ShoppingCart, error) {
	return s.store.FindByID(ctx, id)
}

// FindByUserID returns the user's cart. The unique index on userId guarantees
// at most one.
func (s *CartService) FindByUserID(ctx context.Context, userID string) (*models.ShoppingCart, error) {
	return s.store.FindByUserID(ctx, userID)
}

func (s *CartService) Update(ctx context.Context, id primitive.ObjectID, update *CartUpdate) (*models.ShoppingCart, error) {
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.UserID != nil {
		current.UserID = *update.UserID
	}
	if update.RestaurantID != nil {
		current.RestaurantID = *update.RestaurantID
	}
	if update.ShoppingCartItems != nil {
		populated, err := s.populateItems(ctx, update.ShoppingCartItems)
		if err != nil {
			return nil, err
		}
		current.ShoppingCartItems = populated
	}
	current.TotalPrice = current.Total()

	if err := s.store.Replace(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *CartService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.store.Delete(ctx, id)
}

// AddItem puts one unit of the item into the cart: an existing entry gets its
// quantity bumped, otherwise a snapshot of the item's current record is
// appended with quantity 1. The whole document is replaced; a stale replace
// is retried once against a fresh read.
func (s *CartService) AddItem(ctx context.Context, cartID, itemID primitive.ObjectID) (*models.ShoppingCart, error) {
	return s.mutateWithRetry(ctx, cartID, func(cart *models.ShoppingCart) error {
		item, err := s.items.GetItemByID(ctx, itemID)
		if err != nil {
			return fmt.Errorf("item %s: %w", itemID.Hex(), err)
		}
		if entry := findCartItem(cart.ShoppingCartItems, itemID); entry != nil {
			entry.Quantity++
		} else {
			snapshot := *item
			snapshot.Quantity = 1
			cart.ShoppingCartItems = append(cart.ShoppingCartItems, snapshot)
		}
		return nil
	})
}

// RemoveItem takes one unit out, dropping the entry entirely when its
// quantity would reach zero.
func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID primitive.ObjectID) (*models.ShoppingCart, error) {
	return s.mutateWithRetry(ctx, cartID, func(cart *models.ShoppingCart) error {
		entry := findCartItem(cart.ShoppingCartItems, itemID)
		if entry == nil {
			return fmt.Errorf("item %s not in cart: %w", itemID.Hex(), ErrNotFound)
		}
		if entry.Quantity > 1 {
			entry.Quantity--
			return nil
		}
		kept := cart.ShoppingCartItems[:0]
		for _, it := range cart.ShoppingCartItems {
			if it.ID != itemID {
				kept = append(kept, it)
			}
		}
		cart.ShoppingCartItems = kept
		return nil
	})
}

// ClearCart empties the cart. Repeated calls are no-ops.
func (s *CartService) ClearCart(ctx context.Context, cartID primitive.ObjectID) (*models.ShoppingCart, error) {
	return s.mutateWithRetry(ctx, cartID, func(cart *models.ShoppingCart) error {
		cart.ShoppingCartItems = []models.Item{}
		return nil
	})
}

// AddItemToUserCart is the get-or-create path: look the cart up by user,
// create an empty one when absent, then add. Two concurrent calls for a new
// user both try the insert; the loser hits the unique index and re-reads the
// winner's cart instead of producing a duplicate.
func (s *CartService) AddItemToUserCart(ctx context.Context, userID string, itemID primitive.ObjectID) (*models.ShoppingCart, error) {
	cart, err := s.store.FindByUserID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		cart, err = s.Create(ctx, &models.ShoppingCart{UserID: userID})
		if errors.Is(err, ErrDuplicateCart) {
			cart, err = s.store.FindByUserID(ctx, userID)
		}
	}
	if err != nil {
		return nil, err
	}
	return s.AddItem(ctx, cart.ID, itemID)
}

// mutateWithRetry runs a read-modify-write, recomputing the total before the
// versioned replace. One retry covers the common interleaving; a second
// conflict is surfaced.
func (s *CartService) mutateWithRetry(ctx context.Context, cartID primitive.ObjectID, mutate func(*models.ShoppingCart) error) (*models.ShoppingCart, error) {
	var cart *models.ShoppingCart
	for attempt := 0; attempt < 2; attempt++ {
		var err error
		cart, err = s.store.FindByID(ctx, cartID)
		if err != nil {
			return nil, fmt.Errorf("shopping cart %s: %w", cartID.Hex(), err)
		}
		if err := mutate(cart); err != nil {
			return nil, err
		}
		cart.TotalPrice = cart.Total()

		err = s.store.Replace(ctx, cart)
		if errors.Is(err, ErrConflict) && attempt == 0 {
			continue
		}
		if err != nil {
			return nil, err
		}
		return cart, nil
	}
	return nil, ErrConflict
}

// populateItems swaps caller-supplied entries for authoritative records from
// the items collection, keeping only the caller's quantity.
func (s *CartService) populateItems(ctx context.Context, items []models.Item) ([]models.Item, error) {
	populated := make([]models.Item, 0, len(items))
	for _, supplied := range items {
		item, err := s.items.GetItemByID(ctx, supplied.ID)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", supplied.ID.Hex(), err)
		}
		snapshot := *item
		snapshot.Quantity = supplied.Quantity
		if snapshot.Quantity <= 0 {
			snapshot.Quantity = 1
		}
		populated = append(populated, snapshot)
	}
	return populated, nil
}

func findCartItem(items []models.Item, id primitive.ObjectID) *models.Item {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}
