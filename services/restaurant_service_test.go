package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fooddelivery/models"
	"fooddelivery/pkg/testutil"
	"fooddelivery/services"
)

func TestRestaurantCreateStampsMenuItems(t *testing.T) {
	svc := services.NewRestaurantService(testutil.NewMemRestaurantStore())

	restaurant, err := svc.Create(context.Background(), &models.Restaurant{
		Name: "Testaurant", Address: "1 Main St", Phone: "555-0100",
		MenuItems: []models.Item{
			{ID: primitive.NewObjectID(), ItemName: "Margherita", Price: 10},
		},
	})
	require.NoError(t, err)
	assert.False(t, restaurant.ID.IsZero())
	require.Len(t, restaurant.MenuItems, 1)
	assert.Equal(t, restaurant.ID, restaurant.MenuItems[0].RestaurantID)
}

func TestRestaurantUpdateMergesFields(t *testing.T) {
	svc := services.NewRestaurantService(testutil.NewMemRestaurantStore())
	ctx := context.Background()

	restaurant, err := svc.Create(ctx, &models.Restaurant{
		Name: "Testaurant", Address: "1 Main St", Phone: "555-0100",
	})
	require.NoError(t, err)

	phone := "555-0199"
	updated, err := svc.Update(ctx, restaurant.ID, &services.RestaurantUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Testaurant", updated.Name)
	assert.Equal(t, "1 Main St", updated.Address)
	assert.Equal(t, "555-0199", updated.Phone)
}

func TestRestaurantUpdateMergesMenuItemFields(t *testing.T) {
	svc := services.NewRestaurantService(testutil.NewMemRestaurantStore())
	ctx := context.Background()

	itemID := primitive.NewObjectID()
	restaurant, err := svc.Create(ctx, &models.Restaurant{
		Name: "Testaurant", Address: "1 Main St", Phone: "555-0100",
		MenuItems: []models.Item{{ID: itemID, ItemName: "Margherita", Price: 10}},
	})
	require.NoError(t, err)

	// Patch supplies only the price; the name comes from the stored entry.
	updated, err := svc.Update(ctx, restaurant.ID, &services.RestaurantUpdate{
		MenuItems: []models.Item{{ID: itemID, Price: 12}},
	})
	require.NoError(t, err)
	require.Len(t, updated.MenuItems, 1)
	assert.Equal(t, "Margherita", updated.MenuItems[0].ItemName)
	assert.Equal(t, 12.0, updated.MenuItems[0].Price)
}

func TestRestaurantUpdateUnknownIDIsNotFound(t *testing.T) {
	svc := services.NewRestaurantService(testutil.NewMemRestaurantStore())

	name := "Ghost Kitchen"
	_, err := svc.Update(context.Background(), primitive.NewObjectID(), &services.RestaurantUpdate{Name: &name})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestMenuItemHelpers(t *testing.T) {
	svc := services.NewRestaurantService(testutil.NewMemRestaurantStore())
	ctx := context.Background()

	restaurant, err := svc.Create(ctx, &models.Restaurant{
		Name: "Testaurant", Address: "1 Main St", Phone: "555-0100",
	})
	require.NoError(t, err)

	itemID := primitive.NewObjectID()
	require.NoError(t, svc.AddItemToMenu(ctx, restaurant.ID, models.Item{
		ID: itemID, ItemName: "Margherita", Price: 10,
	}))

	require.NoError(t, svc.UpdateMenuItem(ctx, restaurant.ID, itemID, "Capricciosa", 13))

	got, err := svc.FindByID(ctx, restaurant.ID)
	require.NoError(t, err)
	require.Len(t, got.MenuItems, 1)
	assert.Equal(t, "Capricciosa", got.MenuItems[0].ItemName)
	assert.Equal(t, 13.0, got.MenuItems[0].Price)

	require.NoError(t, svc.RemoveItemFromMenu(ctx, restaurant.ID, itemID))
	got, err = svc.FindByID(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, got.MenuItems)
}

func TestVersionedReplaceRejectsStaleWrite(t *testing.T) {
	store := testutil.NewMemRestaurantStore()
	svc := services.NewRestaurantService(store)
	ctx := context.Background()

	restaurant, err := svc.Create(ctx, &models.Restaurant{
		Name: "Testaurant", Address: "1 Main St", Phone: "555-0100",
	})
	require.NoError(t, err)

	first, err := store.FindByID(ctx, restaurant.ID)
	require.NoError(t, err)
	second, err := store.FindByID(ctx, restaurant.ID)
	require.NoError(t, err)

	first.Phone = "555-0101"
	require.NoError(t, store.Replace(ctx, first))

	second.Phone = "555-0102"
	assert.ErrorIs(t, store.Replace(ctx, second), services.ErrConflict)
}
