package models

// User mirrors an identity-provider account into the users collection.
// The document id is the provider's subject identifier, not a generated one.
type User struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Username string `bson:"username" json:"username"`
	Password string `bson:"-" json:"password,omitempty"`
}
