package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fooddelivery/models"
	"fooddelivery/services"
)

type ItemController struct {
	svc *services.ItemService
}

func NewItemController(svc *services.ItemService) *ItemController {
	return &ItemController{svc: svc}
}

// POST /items
func (h *ItemController) Create(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	created, err := h.svc.AddItem(ctx, &item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /items
func (h *ItemController) GetAll(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := h.svc.GetAllItems(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /items/:id
func (h *ItemController) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	item, err := h.svc.GetItemByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// PUT /items/:id
func (h *ItemController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var update services.ItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	item, err := h.svc.UpdateItem(ctx, id, &update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /items/:id
func (h *ItemController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.DeleteItem(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /items/restaurant/:restaurantId. A restaurant without items is a 404
// by the service's contract.
func (h *ItemController) GetByRestaurantID(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("restaurantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := h.svc.GetItemsByRestaurantID(ctx, restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
