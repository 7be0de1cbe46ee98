package repo

import (
	"context"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	// Create inserts the user unless the email is already registered, in
	// which case it returns a nil-InsertedID result and no error.
	Create(ctx context.Context, user *domain.User) (*domain.SignupResult, error)
	// GetByEmail returns (nil, nil) when no user matches; absence is not
	// an error here, callers decide what it means.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	EstimatedCount(ctx context.Context) (int64, error)
}
