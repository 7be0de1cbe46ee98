package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/queue"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/repo"
	"go.uber.org/zap"
)

type SettlementService struct {
	paymentRepo     repo.PaymentRepository
	cartRepo        repo.CartRepository
	reservationRepo repo.ReservationRepository
	auditRepo       repo.SettlementAuditRepository
	broker          queue.Broker
	logger          *zap.SugaredLogger
}

func NewSettlementService(
	paymentRepo repo.PaymentRepository,
	cartRepo repo.CartRepository,
	reservationRepo repo.ReservationRepository,
	auditRepo repo.SettlementAuditRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *SettlementService {
	return &SettlementService{
		paymentRepo:     paymentRepo,
		cartRepo:        cartRepo,
		reservationRepo: reservationRepo,
		auditRepo:       auditRepo,
		broker:          broker,
		logger:          logger,
	}
}

// Settle records the payment, then makes one best-effort pass at
// retiring the entries it paid for: reservationIds for a Reservation
// payment, cartIds otherwise. The two steps are not wrapped in a
// transaction. A failed insert aborts before anything is deleted; a
// failed or partial delete never undoes the recorded charge. Both
// outcomes go back to the caller uninterpreted. Re-submitting the same
// payload records a second payment.
func (s *SettlementService) Settle(ctx context.Context, payment *domain.Payment) (*domain.SettlementResult, error) {
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	var (
		deleted int64
		err     error
	)
	if payment.IsReservation() {
		deleted, err = s.reservationRepo.DeleteManyByIDs(ctx, payment.ReservationIDs)
	} else {
		deleted, err = s.cartRepo.DeleteManyByIDs(ctx, payment.CartIDs)
	}
	if err != nil {
		// the charge stands; leftover entries are what the audit worker
		// is there to find
		s.logger.Errorw("settlement cleanup failed",
			"payment_id", payment.ID.Hex(),
			"category", payment.Category,
			"error", err,
		)
	}

	s.publishRecorded(ctx, payment, deleted)

	s.logger.Infow("payment settled",
		"payment_id", payment.ID.Hex(),
		"email", payment.Email,
		"amount", payment.Amount,
		"deleted", deleted,
	)

	return &domain.SettlementResult{
		PaymentID:    payment.ID,
		DeletedCount: deleted,
	}, nil
}

func (s *SettlementService) publishRecorded(ctx context.Context, payment *domain.Payment, deleted int64) {
	event := domain.PaymentRecordedEvent{
		EventType:    domain.EventPaymentRecorded,
		PaymentID:    payment.ID.Hex(),
		Email:        payment.Email,
		Category:     payment.Category,
		SourceIDs:    payment.SourceIDs(),
		DeletedCount: deleted,
		Timestamp:    time.Now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal payment event", "payment_id", event.PaymentID, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueuePaymentEvents, eventBytes); err != nil {
		s.logger.Errorw("failed to publish payment event", "payment_id", event.PaymentID, "error", err)
	}
}

// ProcessPaymentRecorded re-checks the source collection a settled
// payment was supposed to clear. Detection only: entries still present
// are recorded and logged, never deleted here.
func (s *SettlementService) ProcessPaymentRecorded(ctx context.Context, event domain.PaymentRecordedEvent) error {
	if len(event.SourceIDs) == 0 {
		return nil
	}

	var (
		leftover int64
		err      error
	)
	if event.Category == domain.CategoryReservation {
		leftover, err = s.reservationRepo.CountByIDs(ctx, event.SourceIDs)
	} else {
		leftover, err = s.cartRepo.CountByIDs(ctx, event.SourceIDs)
	}
	if err != nil {
		return fmt.Errorf("failed to check source entries: %w", err)
	}

	if leftover == 0 {
		return nil
	}

	audit := &domain.SettlementAudit{
		PaymentID:     event.PaymentID,
		Email:         event.Email,
		Category:      event.Category,
		SourceIDs:     event.SourceIDs,
		LeftoverCount: leftover,
		CheckedAt:     time.Now(),
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		return fmt.Errorf("failed to record settlement audit: %w", err)
	}

	s.logger.Warnw("settled payment left source entries behind",
		"payment_id", event.PaymentID,
		"category", event.Category,
		"leftover", leftover,
	)

	return nil
}

// GetPaymentAudit lists audit records for a payment, newest first.
func (s *SettlementService) GetPaymentAudit(ctx context.Context, paymentID string, limit int) ([]domain.SettlementAudit, error) {
	audits, err := s.auditRepo.GetByPaymentID(ctx, paymentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment audit: %w", err)
	}

	return audits, nil
}
