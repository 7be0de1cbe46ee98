package repo

import (
	"context"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
)

type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	// CreateMany bulk-inserts imported items and reports how many were
	// written.
	CreateMany(ctx context.Context, items []domain.MenuItem) (int, error)
	GetAll(ctx context.Context) ([]domain.MenuItem, error)
	// GetByID tries the identifier's native interpretation first and
	// falls back to the legacy string form before reporting absence.
	GetByID(ctx context.Context, id domain.ItemID) (*domain.MenuItem, error)
	Update(ctx context.Context, id domain.ItemID, item *domain.MenuItem) error
	Delete(ctx context.Context, id domain.ItemID) error
	EstimatedCount(ctx context.Context) (int64, error)
}
