package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Item is a menu entry. Quantity is only meaningful on the copy embedded in a
// shopping cart; on the items collection it stays unset.
type Item struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantID primitive.ObjectID `bson:"restaurantId,omitempty" json:"restaurantId,omitempty"`
	ItemName     string             `bson:"itemName" json:"itemName"`
	Price        float64            `bson:"price" json:"price"`
	Quantity     int                `bson:"quantity,omitempty" json:"quantity,omitempty"`
}
