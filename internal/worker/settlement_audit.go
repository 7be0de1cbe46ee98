package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/queue"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/service"
	"go.uber.org/zap"
)

type SettlementAuditWorker struct {
	settlementService *service.SettlementService
	broker            queue.Broker
	logger            *zap.SugaredLogger
	ctx               context.Context
	cancel            context.CancelFunc
}

func NewSettlementAuditWorker(
	settlementService *service.SettlementService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *SettlementAuditWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &SettlementAuditWorker{
		settlementService: settlementService,
		broker:            broker,
		logger:            logger,
		ctx:               ctx,
		cancel:            cancel,
	}
}

func (w *SettlementAuditWorker) Start() error {
	w.logger.Info("starting settlement audit worker")

	return w.broker.Subscribe(w.ctx, queue.QueuePaymentEvents, w.handleMessage)
}

func (w *SettlementAuditWorker) Stop() {
	w.logger.Info("stopping settlement audit worker")
	w.cancel()
}

func (w *SettlementAuditWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.PaymentRecordedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("checking settled payment", "payment_id", event.PaymentID, "category", event.Category)

	if err := w.settlementService.ProcessPaymentRecorded(ctx, event); err != nil {
		w.logger.Errorw("failed to process payment event", "payment_id", event.PaymentID, "error", err)
		return err
	}

	return nil
}
