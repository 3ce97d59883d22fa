package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Restaurant embeds a denormalized copy of its items in MenuItems for cheap
// menu reads. The items collection stays the source of truth; the two are
// synced with separate writes and can drift. Version backs optimistic
// concurrency on menu edits.
type Restaurant struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" binding:"required"`
	Address   string             `bson:"address" json:"address" binding:"required"`
	Phone     string             `bson:"phone" json:"phone" binding:"required"`
	MenuItems []Item             `bson:"menuItems" json:"menuItems"`
	Version   int64              `bson:"version" json:"-"`
}
