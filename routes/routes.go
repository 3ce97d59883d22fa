package routes

import (
	"github.com/gin-gonic/gin"

	"fooddelivery/controllers"
	"fooddelivery/database"
	"fooddelivery/identity"
	"fooddelivery/repository"
	"fooddelivery/services"
)

// Deps are the wired services the route table is built from.
type Deps struct {
	Users       *services.UserService
	Restaurants *services.RestaurantService
	Items       *services.ItemService
	Carts       *services.CartService
	Provider    identity.Provider
}

// FromMongo wires the services over the initialized collections.
func FromMongo(provider identity.Provider) Deps {
	restaurantSvc := services.NewRestaurantService(
		repository.NewRestaurantRepository(database.RestaurantCollection))
	itemSvc := services.NewItemService(
		repository.NewItemRepository(database.ItemCollection), restaurantSvc)

	return Deps{
		Users: services.NewUserService(
			repository.NewUserRepository(database.UserCollection), provider),
		Restaurants: restaurantSvc,
		Items:       itemSvc,
		Carts: services.NewCartService(
			repository.NewCartRepository(database.CartCollection), itemSvc),
		Provider: provider,
	}
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	users := controllers.NewUserController(d.Users)
	restaurants := controllers.NewRestaurantController(d.Restaurants)
	items := controllers.NewItemController(d.Items)
	carts := controllers.NewCartController(d.Carts)
	auth := controllers.NewAuthController(d.Provider, d.Users)

	r.GET("/users", users.GetAll)
	r.POST("/users", users.Create)
	r.POST("/users/login", users.Login)
	r.GET("/users/:id", users.GetByID)
	r.PUT("/users/:id", users.Update)
	r.DELETE("/users/:id", users.Delete)

	r.GET("/restaurants", restaurants.GetAll)
	r.POST("/restaurants", restaurants.Create)
	r.GET("/restaurants/:id", restaurants.GetByID)
	r.PUT("/restaurants/:id", restaurants.Update)
	r.DELETE("/restaurants/:id", restaurants.Delete)

	r.GET("/items", items.GetAll)
	r.POST("/items", items.Create)
	r.GET("/items/restaurant/:restaurantId", items.GetByRestaurantID)
	r.GET("/items/:id", items.GetByID)
	r.PUT("/items/:id", items.Update)
	r.DELETE("/items/:id", items.Delete)

	r.GET("/shopping-carts", carts.GetAll)
	r.POST("/shopping-carts", carts.Create)
	r.GET("/shopping-carts/user/:userId", carts.GetByUserID)
	r.POST("/shopping-carts/user/:userId/items", carts.AddItemToUserCart)
	r.GET("/shopping-carts/:id", carts.GetByID)
	r.PUT("/shopping-carts/:id", carts.Update)
	r.POST("/shopping-carts/:id/items", carts.AddItem)
	r.DELETE("/shopping-carts/:id/items/:itemId", carts.RemoveItem)
	r.DELETE("/shopping-carts/:id/items", carts.ClearCart)

	r.POST("/auth/login", auth.Login)
	r.POST("/auth/token", auth.Token)
}
