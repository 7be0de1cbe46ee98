package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartEntry snapshots the menu item's name and price at add-to-cart
// time; the referenced item may change or disappear afterwards.
type CartEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email  string             `bson:"email" json:"email"`
	MenuID string             `bson:"menuId" json:"menuId"`
	Name   string             `bson:"name" json:"name"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Price  float64            `bson:"price" json:"price"`
}
