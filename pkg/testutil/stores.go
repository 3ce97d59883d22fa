// Package testutil provides in-memory store implementations mirroring the
// repository contracts, including the versioned replace and the unique-userId
// cart insert. Service and controller tests run against these instead of a
// live MongoDB.
package testutil

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fooddelivery/models"
	"fooddelivery/services"
)

type MemUserStore struct {
	users map[string]models.User
}

func NewMemUserStore() *MemUserStore {
	return &MemUserStore{users: map[string]models.User{}}
}

func (m *MemUserStore) Insert(_ context.Context, user *models.User) error {
	m.users[user.ID] = *user
	return nil
}

func (m *MemUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &user, nil
}

func (m *MemUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, services.ErrNotFound
}

func (m *MemUserStore) FindAll(_ context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *MemUserStore) Replace(_ context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return services.ErrNotFound
	}
	m.users[user.ID] = *user
	return nil
}

func (m *MemUserStore) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return services.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type MemRestaurantStore struct {
	restaurants map[primitive.ObjectID]models.Restaurant
}

func NewMemRestaurantStore() *MemRestaurantStore {
	return &MemRestaurantStore{restaurants: map[primitive.ObjectID]models.Restaurant{}}
}

func copyRestaurant(r models.Restaurant) models.Restaurant {
	r.MenuItems = append([]models.Item{}, r.MenuItems...)
	return r
}

func (m *MemRestaurantStore) Insert(_ context.Context, r *models.Restaurant) error {
	m.restaurants[r.ID] = copyRestaurant(*r)
	return nil
}

func (m *MemRestaurantStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	r, ok := m.restaurants[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	r = copyRestaurant(r)
	return &r, nil
}

func (m *MemRestaurantStore) FindAll(_ context.Context) ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	for _, r := range m.restaurants {
		restaurants = append(restaurants, copyRestaurant(r))
	}
	return restaurants, nil
}

func (m *MemRestaurantStore) Replace(_ context.Context, r *models.Restaurant) error {
	stored, ok := m.restaurants[r.ID]
	if !ok {
		return services.ErrNotFound
	}
	if stored.Version != r.Version {
		return services.ErrConflict
	}
	r.Version++
	m.restaurants[r.ID] = copyRestaurant(*r)
	return nil
}

func (m *MemRestaurantStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.restaurants[id]; !ok {
		return services.ErrNotFound
	}
	delete(m.restaurants, id)
	return nil
}

type MemItemStore struct {
	items map[primitive.ObjectID]models.Item
}

func NewMemItemStore() *MemItemStore {
	return &MemItemStore{items: map[primitive.ObjectID]models.Item{}}
}

func (m *MemItemStore) Insert(_ context.Context, item *models.Item) error {
	m.items[item.ID] = *item
	return nil
}

func (m *MemItemStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &item, nil
}

func (m *MemItemStore) FindAll(_ context.Context) ([]models.Item, error) {
	items := []models.Item{}
	for _, it := range m.items {
		items = append(items, it)
	}
	return items, nil
}

func (m *MemItemStore) FindByRestaurantID(_ context.Context, restaurantID primitive.ObjectID) ([]models.Item, error) {
	items := []models.Item{}
	for _, it := range m.items {
		if it.RestaurantID == restaurantID {
			items = append(items, it)
		}
	}
	return items, nil
}

func (m *MemItemStore) Replace(_ context.Context, item *models.Item) error {
	if _, ok := m.items[item.ID]; !ok {
		return services.ErrNotFound
	}
	m.items[item.ID] = *item
	return nil
}

func (m *MemItemStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.items[id]; !ok {
		return services.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type MemCartStore struct {
	carts map[primitive.ObjectID]models.ShoppingCart
	// ConflictNextReplace makes the next Replace fail once with ErrConflict.
	ConflictNextReplace bool
}

func NewMemCartStore() *MemCartStore {
	return &MemCartStore{carts: map[primitive.ObjectID]models.ShoppingCart{}}
}

func copyCart(c models.ShoppingCart) models.ShoppingCart {
	c.ShoppingCartItems = append([]models.Item{}, c.ShoppingCartItems...)
	return c
}

func (m *MemCartStore) Insert(_ context.Context, cart *models.ShoppingCart) error {
	for _, existing := range m.carts {
		if existing.UserID == cart.UserID {
			return services.ErrDuplicateCart
		}
	}
	m.carts[cart.ID] = copyCart(*cart)
	return nil
}

func (m *MemCartStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.ShoppingCart, error) {
	cart, ok := m.carts[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	cart = copyCart(cart)
	return &cart, nil
}

func (m *MemCartStore) FindByUserID(_ context.Context, userID string) (*models.ShoppingCart, error) {
	for _, cart := range m.carts {
		if cart.UserID == userID {
			c := copyCart(cart)
			return &c, nil
		}
	}
	return nil, services.ErrNotFound
}

func (m *MemCartStore) FindAll(_ context.Context) ([]models.ShoppingCart, error) {
	carts := []models.ShoppingCart{}
	for _, c := range m.carts {
		carts = append(carts, copyCart(c))
	}
	return carts, nil
}

func (m *MemCartStore) Replace(_ context.Context, cart *models.ShoppingCart) error {
	if m.ConflictNextReplace {
		m.ConflictNextReplace = false
		return services.ErrConflict
	}
	stored, ok := m.carts[cart.ID]
	if !ok {
		return services.ErrNotFound
	}
	if stored.Version != cart.Version {
		return services.ErrConflict
	}
	cart.Version++
	m.carts[cart.ID] = copyCart(*cart)
	return nil
}

func (m *MemCartStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.carts[id]; !ok {
		return services.ErrNotFound
	}
	delete(m.carts, id)
	return nil
}
