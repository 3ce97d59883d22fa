package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/identity"
	"fooddelivery/models"
	"fooddelivery/pkg/testutil"
	"fooddelivery/routes"
	"fooddelivery/services"
)

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	restaurantSvc := services.NewRestaurantService(testutil.NewMemRestaurantStore())
	itemSvc := services.NewItemService(testutil.NewMemItemStore(), restaurantSvc)
	provider := identity.NewLocalProvider(testutil.NewMemCredentialStore(), "test-secret")

	routes.RegisterRoutes(r, routes.Deps{
		Users:       services.NewUserService(testutil.NewMemUserStore(), provider),
		Restaurants: restaurantSvc,
		Items:       itemSvc,
		Carts:       services.NewCartService(testutil.NewMemCartStore(), itemSvc),
		Provider:    provider,
	})
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func seedRestaurantWithItem(t *testing.T, r *gin.Engine) (models.Restaurant, models.Item) {
	t.Helper()
	var restaurant models.Restaurant
	w := do(t, r, http.MethodPost, "/restaurants", gin.H{
		"name": "Testaurant", "address": "1 Main St", "phone": "555-0100",
	}, &restaurant)
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.Item
	w = do(t, r, http.MethodPost, "/items", gin.H{
		"restaurantId": restaurant.ID, "itemName": "Margherita", "price": 10,
	}, &item)
	require.Equal(t, http.StatusCreated, w.Code)
	return restaurant, item
}

func TestRestaurantValidationAndLookup(t *testing.T) {
	r := newTestServer()

	w := do(t, r, http.MethodPost, "/restaurants", gin.H{"name": "No Address"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	restaurant, _ := seedRestaurantWithItem(t, r)

	var got models.Restaurant
	w = do(t, r, http.MethodGet, "/restaurants/"+restaurant.ID.Hex(), nil, &got)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Testaurant", got.Name)
	require.Len(t, got.MenuItems, 1)

	w = do(t, r, http.MethodGet, "/restaurants/not-a-hex-id", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/restaurants/ffffffffffffffffffffffff", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemsByRestaurant(t *testing.T) {
	r := newTestServer()
	restaurant, item := seedRestaurantWithItem(t, r)

	var items []models.Item
	w := do(t, r, http.MethodGet, "/items/restaurant/"+restaurant.ID.Hex(), nil, &items)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)

	// A restaurant with zero items is a 404, not an empty list.
	w = do(t, r, http.MethodGet, "/items/restaurant/ffffffffffffffffffffffff", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartFlow(t *testing.T) {
	r := newTestServer()
	_, item := seedRestaurantWithItem(t, r)

	w := do(t, r, http.MethodGet, "/shopping-carts/user/user-1", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var cart models.ShoppingCart
	w = do(t, r, http.MethodPost, "/shopping-carts/user/user-1/items",
		gin.H{"itemId": item.ID}, &cart)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, cart.ShoppingCartItems, 1)
	assert.Equal(t, 1, cart.ShoppingCartItems[0].Quantity)
	assert.Equal(t, 10.0, cart.TotalPrice)

	w = do(t, r, http.MethodPost, fmt.Sprintf("/shopping-carts/%s/items", cart.ID.Hex()),
		gin.H{"id": item.ID}, &cart)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, cart.ShoppingCartItems, 1)
	assert.Equal(t, 2, cart.ShoppingCartItems[0].Quantity)
	assert.Equal(t, 20.0, cart.TotalPrice)

	w = do(t, r, http.MethodDelete,
		fmt.Sprintf("/shopping-carts/%s/items/%s", cart.ID.Hex(), item.ID.Hex()), nil, &cart)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, cart.ShoppingCartItems[0].Quantity)
	assert.Equal(t, 10.0, cart.TotalPrice)

	w = do(t, r, http.MethodDelete,
		fmt.Sprintf("/shopping-carts/%s/items", cart.ID.Hex()), nil, &cart)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.ShoppingCartItems)
	assert.Equal(t, 0.0, cart.TotalPrice)

	w = do(t, r, http.MethodPost, fmt.Sprintf("/shopping-carts/%s/items", cart.ID.Hex()),
		gin.H{"id": "ffffffffffffffffffffffff"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthFlow(t *testing.T) {
	r := newTestServer()

	var user models.User
	w := do(t, r, http.MethodPost, "/users", gin.H{"username": "alice@example.com"}, &user)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, user.ID)

	// Signup registers the fixed placeholder password with the provider.
	var tokenResp struct {
		Token string `json:"token"`
	}
	w = do(t, r, http.MethodPost, "/auth/token",
		gin.H{"username": "alice@example.com", "password": "123456"}, &tokenResp)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, tokenResp.Token)

	var session struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	w = do(t, r, http.MethodPost, "/auth/login", gin.H{"token": tokenResp.Token}, &session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID, session.ID)
	assert.Equal(t, "alice@example.com", session.Username)

	w = do(t, r, http.MethodPost, "/auth/login", gin.H{"token": "garbage"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/auth/token",
		gin.H{"username": "alice@example.com", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserLifecycle(t *testing.T) {
	r := newTestServer()

	var user models.User
	w := do(t, r, http.MethodPost, "/users", gin.H{"username": "bob@example.com"}, &user)
	require.Equal(t, http.StatusCreated, w.Code)

	var found models.User
	w = do(t, r, http.MethodPost, "/users/login", gin.H{"username": "bob@example.com"}, &found)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID, found.ID)

	w = do(t, r, http.MethodPut, "/users/"+user.ID, gin.H{"username": "bob@new.example.com"}, &found)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob@new.example.com", found.Username)

	w = do(t, r, http.MethodDelete, "/users/"+user.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/users/"+user.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The provider account is gone too. Username updates never touch the
	// provider, so the credential still carries the signup email.
	w = do(t, r, http.MethodPost, "/auth/token",
		gin.H{"username": "bob@example.com", "password": "123456"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
