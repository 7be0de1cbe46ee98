package repo

import (
	"context"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
)

type PaymentRepository interface {
	// Create inserts the payment verbatim. Payments are immutable; this
	// is the collection's only write path.
	Create(ctx context.Context, payment *domain.Payment) error
	GetByEmail(ctx context.Context, email string) ([]domain.Payment, error)
	EstimatedCount(ctx context.Context) (int64, error)
	// TotalRevenue sums amount across all payments, 0 when there are none.
	TotalRevenue(ctx context.Context) (float64, error)
	// OrderStatsByCategory aggregates order payments (those carrying
	// menuIds) into per-category quantity and revenue at current menu
	// prices. Categories with no matching payments are omitted.
	OrderStatsByCategory(ctx context.Context) ([]domain.CategoryOrderStats, error)
	// UserStats aggregates one payer's payments; an email with no
	// payments yields a zero-valued result, not an error.
	UserStats(ctx context.Context, email string) (*domain.UserStats, error)
}
