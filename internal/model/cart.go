package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a menu item placed in a user's cart. The email field is the
// owner key used for lookups; ownership is advisory, no check is enforced
// when the item is written.
type CartItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	MenuID   string             `bson:"menuId" json:"menuId"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Price    float64            `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
}
