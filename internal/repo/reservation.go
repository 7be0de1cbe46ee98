package repo

import (
	"context"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationRepository interface {
	Create(ctx context.Context, entry *domain.ReservationEntry) error
	GetByEmail(ctx context.Context, email string) ([]domain.ReservationEntry, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteManyByIDs(ctx context.Context, ids []string) (int64, error)
	CountByIDs(ctx context.Context, ids []string) (int64, error)
}
