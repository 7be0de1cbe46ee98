package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin is the only place the optional role field is compared. A user
// created by signup has no role at all; absence means not admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// SignupResult distinguishes a fresh signup from the duplicate-email
// no-op: the second signup for the same email returns a nil InsertedID
// and is not an error.
type SignupResult struct {
	InsertedID *primitive.ObjectID `json:"insertedId"`
	Message    string              `json:"message,omitempty"`
}
