package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name" json:"name"`
	Phone  string             `bson:"phone" json:"phone"`
	Date   string             `bson:"date" json:"date"`
	Slot   string             `bson:"slot" json:"slot"`
	Guests int                `bson:"guests" json:"guests"`
}
