package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is upserted by reviewer email: one review per reviewer,
// last write wins.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Rating  float64            `bson:"rating" json:"rating"`
	Details string             `bson:"details" json:"details"`
}
