package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ShoppingCart holds add-time snapshots of items, so later price edits on the
// source item do not change a cart that already holds it. TotalPrice is
// recomputed from the snapshots on every mutation. Version backs optimistic
// concurrency on the full-document replace.
type ShoppingCart struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            string             `bson:"userId" json:"userId"`
	RestaurantID      primitive.ObjectID `bson:"restaurantId,omitempty" json:"restaurantId,omitempty"`
	ShoppingCartItems []Item             `bson:"shoppingCartItems" json:"shoppingCartItems"`
	TotalPrice        float64            `bson:"totalPrice" json:"totalPrice"`
	Version           int64              `bson:"version" json:"-"`
}

// Total recomputes the price sum from scratch. Every cart mutation calls this
// rather than keeping a running total, trading a rescan for drift-freedom.
func (c *ShoppingCart) Total() float64 {
	var total float64
	for _, it := range c.ShoppingCartItems {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
