package repo

import (
	"context"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
)

type SettlementAuditRepository interface {
	Create(ctx context.Context, audit *domain.SettlementAudit) error
	GetByPaymentID(ctx context.Context, paymentID string, limit int) ([]domain.SettlementAudit, error)
}
