package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fooddelivery/models"
	"fooddelivery/services"
)

type CartController struct {
	svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{svc: svc}
}

// POST /shopping-carts
func (h *CartController) Create(c *gin.Context) {
	var cart models.ShoppingCart
	if err := c.ShouldBindJSON(&cart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	created, err := h.svc.Create(ctx, &cart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /shopping-carts
func (h *CartController) GetAll(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	carts, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, carts)
}

// GET /shopping-carts/:id
func (h *CartController) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cart, err := h.svc.FindByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// PUT /shopping-carts/:id
func (h *CartController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}

	var update services.CartUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cart, err := h.svc.Update(ctx, id, &update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// GET /shopping-carts/user/:userId
func (h *CartController) GetByUserID(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	cart, err := h.svc.FindByUserID(ctx, c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// POST /shopping-carts/:id/items {"id": "<itemId>"}
func (h *CartController) AddItem(c *gin.Context) {
	cartID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}

	var body struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	itemID, err := primitive.ObjectIDFromHex(body.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cart, err := h.svc.AddItem(ctx, cartID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// POST /shopping-carts/user/:userId/items {"itemId": "<itemId>"} — the
// get-or-create path.
func (h *CartController) AddItemToUserCart(c *gin.Context) {
	var body struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	itemID, err := primitive.ObjectIDFromHex(body.ItemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cart, err := h.svc.AddItemToUserCart(ctx, c.Param("userId"), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// DELETE /shopping-carts/:id/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	cartID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}
	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cart, err := h.svc.RemoveItem(ctx, cartID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// DELETE /shopping-carts/:id/items
func (h *CartController) ClearCart(c *gin.Context) {
	cartID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cart, err := h.svc.ClearCart(ctx, cartID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}
