package repo

import (
	"context"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
)

type ReviewRepository interface {
	GetAll(ctx context.Context) ([]domain.Review, error)
	// Upsert keys on the reviewer's email: the whole document is
	// replaced, last write wins.
	Upsert(ctx context.Context, review *domain.Review) error
}
