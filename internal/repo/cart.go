package repo

import (
	"context"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartRepository interface {
	Create(ctx context.Context, entry *domain.CartEntry) error
	GetByEmail(ctx context.Context, email string) ([]domain.CartEntry, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// DeleteManyByIDs removes all entries whose hex id is in ids and
	// returns the number removed. Absent ids are no-ops, not errors.
	DeleteManyByIDs(ctx context.Context, ids []string) (int64, error)
	// CountByIDs reports how many of the given ids still exist.
	CountByIDs(ctx context.Context, ids []string) (int64, error)
}
